package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gcode-clean/gcodeclean/internal/phase1"
)

// PreconditionError reports the splitter's one hard precondition: the input
// must already have been cleaned (and so must carry at least one travelling
// comment). The splitter never touches the filesystem when this fires.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("splitter: %s", e.Reason)
}

const preambleScanCap = 100

var xyPattern = regexp.MustCompile(`[XY]-?\d+(\.\d+)?`)

func extractXY(s string) string {
	return strings.Join(xyPattern.FindAllString(s, -1), "")
}

func padWidth(maxVal int) int {
	return len(strconv.Itoa(maxVal))
}

// Split partitions cleaned lines of text into one file per cut under
// folder, returning the list of written file paths. folder is deleted and
// recreated first. Returns a *PreconditionError, without touching the
// filesystem, if lines carry no travelling comments.
func Split(lines []string, folder string) ([]string, error) {
	var nodes []Node
	for i, l := range lines {
		if n, ok := ParseNode(l, i); ok {
			nodes = append(nodes, n)
		}
	}
	if len(nodes) == 0 {
		return nil, &PreconditionError{Reason: "file has not been pre-processed"}
	}

	preambleEnd := 0
	for i, l := range lines {
		if i >= preambleScanCap {
			break
		}
		preambleEnd = i
		if strings.TrimSpace(l) == phase1.MarkerPreambleCompleted {
			break
		}
	}
	preamble := append([]string(nil), lines[:preambleEnd+1]...)
	postamble := append([]string(nil), lines[nodes[len(nodes)-1].LineIndex+1:]...)

	AssignDepthBands(nodes)

	maxSeq, maxSubSeq, maxID := 0, 0, 0
	for _, n := range nodes {
		if n.Seq > maxSeq {
			maxSeq = n.Seq
		}
		if n.SubSeq > maxSubSeq {
			maxSubSeq = n.SubSeq
		}
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	seqW, subW, idW := padWidth(maxSeq), padWidth(maxSubSeq), padWidth(maxID)

	if err := os.RemoveAll(folder); err != nil {
		return nil, fmt.Errorf("splitter: clear folder: %w", err)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("splitter: create folder: %w", err)
	}

	var written []string
	bodyStart := preambleEnd + 1
	for _, n := range nodes {
		name := fmt.Sprintf("%0*d_%0*d_%0*d_%s_%s_%s_gcc.nc",
			seqW, n.Seq, subW, n.SubSeq, idW, n.ID, n.Tool,
			extractXY(n.Entry), extractXY(n.Exit))
		path := filepath.Join(folder, name)

		var body []string
		body = append(body, lines[bodyStart:n.LineIndex]...)
		body = append(body, n.Format())
		bodyStart = n.LineIndex + 1

		content := strings.Join(preamble, "\n") + "\n" +
			strings.Join(body, "\n") + "\n" +
			strings.Join(postamble, "\n") + "\n"

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("splitter: write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
