package http

import "strings"

// encodeDelta splits one model delta into SSE wire events. Every interior
// line becomes its own `data:` event followed by a single-space padding event
// (`data:  `); without the padding, a bare newline inside one payload would
// collapse blank-line structure on the receiving side. The final fragment of
// a delta gets no padding event. An empty delta produces no events.
func encodeDelta(delta string) []string {
	if delta == "" {
		return nil
	}

	lines := strings.Split(delta, "\n")
	events := make([]string, 0, len(lines)*2)
	for _, line := range lines[:len(lines)-1] {
		events = append(events, "data: "+line+"\n\n", "data:  \n")
	}
	return append(events, "data: "+lines[len(lines)-1]+"\n\n")
}
