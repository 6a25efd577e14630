package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewerLink(t *testing.T) {
	t.Run("PercentEncodesTraceURL", func(t *testing.T) {
		link := ViewerLink(
			"https://ui.perfetto.dev/#!/",
			"url",
			"https://traces.example.com/binius/main/keccakf/single-thread/c7a/1700000000-012345678/c7a-keccakf-single-thread-001-trace.perfetto-trace",
		)
		assert.Equal(t,
			"https://ui.perfetto.dev/#!/?url=https%3A%2F%2Ftraces.example.com%2Fbinius%2Fmain%2Fkeccakf%2Fsingle-thread%2Fc7a%2F1700000000-012345678%2Fc7a-keccakf-single-thread-001-trace.perfetto-trace",
			link)
	})
	t.Run("IsPure", func(t *testing.T) {
		first := ViewerLink("https://viewer", "trace", "https://a/b")
		second := ViewerLink("https://viewer", "trace", "https://a/b")
		assert.Equal(t, first, second)
	})
}
