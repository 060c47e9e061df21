package cellgrid

// Version is the library version, stamped at release time.
const Version = "0.1.0"
