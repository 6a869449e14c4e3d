package http_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/visitnotes-lab/visitnotes/pkg/controller/http"
)

func TestEncodeDelta(t *testing.T) {
	t.Run("interior newlines produce a padding event each", func(t *testing.T) {
		events := httpctrl.EncodeDelta("Hello\nWorld")
		gt.Array(t, events).Equal([]string{
			"data: Hello\n\n",
			"data:  \n",
			"data: World\n\n",
		})
	})

	t.Run("final fragment gets no padding event", func(t *testing.T) {
		events := httpctrl.EncodeDelta("!")
		gt.Array(t, events).Equal([]string{"data: !\n\n"})
	})

	t.Run("scripted delta sequence yields the documented event order", func(t *testing.T) {
		var events []string
		for _, delta := range []string{"Hello\nWorld", "!"} {
			events = append(events, httpctrl.EncodeDelta(delta)...)
		}
		gt.Array(t, events).Equal([]string{
			"data: Hello\n\n",
			"data:  \n",
			"data: World\n\n",
			"data: !\n\n",
		})
	})

	t.Run("empty delta produces zero events", func(t *testing.T) {
		gt.Array(t, httpctrl.EncodeDelta("")).Length(0)
	})

	t.Run("trailing newline produces a trailing empty data event", func(t *testing.T) {
		events := httpctrl.EncodeDelta("line\n")
		gt.Array(t, events).Equal([]string{
			"data: line\n\n",
			"data:  \n",
			"data: \n\n",
		})
	})

	t.Run("blank-line structure is preserved", func(t *testing.T) {
		events := httpctrl.EncodeDelta("a\n\nb")
		gt.Array(t, events).Equal([]string{
			"data: a\n\n",
			"data:  \n",
			"data: \n\n",
			"data:  \n",
			"data: b\n\n",
		})
	})
}
