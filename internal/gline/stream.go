package gline

// Stream turns a slice of raw lines into a channel, the producer side of the
// single-producer/single-consumer convention used between phases (§5, §9).
func Stream(lines []string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for _, l := range lines {
			out <- l
		}
	}()
	return out
}

// Tokenise is the pull-based tokeniser: it consumes raw lines and yields
// classified Lines in the same order, one per input line, with O(1)
// per-line buffering.
func Tokenise(lines <-chan string) <-chan Line {
	out := make(chan Line)
	go func() {
		defer close(out)
		for raw := range lines {
			out <- FromRaw(raw)
		}
	}()
	return out
}

// Collect drains a Line channel into a slice. Used by callers (the CLI, and
// tests) that need the whole stream materialised, e.g. for the splitter's
// single re-read of an already-cleaned file.
func Collect(lines <-chan Line) []Line {
	return CollectWithTick(lines, nil)
}

// CollectWithTick is Collect with an optional per-line callback, the hook
// the CLI uses to drive its streaming progress reporter (SUPPLEMENTED
// FEATURES #3) without gline depending on the diagnostics package.
func CollectWithTick(lines <-chan Line, tick func()) []Line {
	var out []Line
	for l := range lines {
		if tick != nil {
			tick()
		}
		out = append(out, l)
	}
	return out
}
