package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\r\nexplain\nlast"), &out)

	for _, want := range []string{"y", "explain", "last"} {
		got, err := p.Ask("Q? ")
		if err != nil {
			t.Fatalf("Ask error: %v", err)
		}
		if got != want {
			t.Errorf("Ask() = %q, want %q", got, want)
		}
	}
	if _, err := p.Ask("Q? "); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF at end of input, got %v", err)
	}
	if got := strings.Count(out.String(), "Q? "); got != 4 {
		t.Errorf("question printed %d times, want 4", got)
	}
}
