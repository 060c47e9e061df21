package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResources_ReadVsWrite(t *testing.T) {
	tests := []struct {
		name   string
		source string
		reads  []string
		writes []string
	}{
		{
			name:   "pandas write",
			source: "df.to_csv('out.csv')",
			writes: []string{"out.csv"},
		},
		{
			name:   "pandas read",
			source: "df = pd.read_csv('data/in.csv')",
			reads:  []string{"data/in.csv"},
		},
		{
			name:   "open for write",
			source: "f = open('notes.txt', 'w')",
			writes: []string{"notes.txt"},
		},
		{
			name:   "open default is read",
			source: "f = open('notes.txt')",
			reads:  []string{"notes.txt"},
		},
		{
			name:   "savefig",
			source: "plt.savefig('plots/loss.png')",
			writes: []string{"plots/loss.png"},
		},
		{
			name:   "mkdir",
			source: "os.makedirs('artifacts/models')",
			writes: []string{"artifacts/models"},
		},
		{
			name:   "non-path literal ignored",
			source: "label = 'hello world'",
		},
		{
			name:   "url ignored",
			source: "requests.get('https://example.com/data.csv')",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Extract(tt.source)
			assert.Equal(t, tt.reads, res.ResourceReads)
			assert.Equal(t, tt.writes, res.ResourceWrites)
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`data\raw\input.csv`, "data/raw/input.csv", true},
		{"./out.json", "out.json", true},
		{"out.csv", "out.csv", true},
		{"Data/MixedCase.CSV", "Data/MixedCase.CSV", true},
		{"just words", "", false},
		{"", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizePath(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
