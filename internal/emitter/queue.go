package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

// queueHeader is the literal first line of every queue index file.
const queueHeader = "queue file"

// DefaultQueueName names the queue file when the caller provides none.
const DefaultQueueName = "queue.QUE"

// Generate builds the queue index and one cut file per row. Groups
// without a thickness and rows without a work-order number are skipped
// and reported; neither aborts the batch. QUE line positions match the
// cut-file emission order.
func Generate(name string, groups []model.Group) (model.FilePair, error) {
	if len(groups) == 0 {
		return model.FilePair{}, fmt.Errorf("no groups to generate files from")
	}
	if name == "" {
		name = DefaultQueueName
	}

	pair := model.FilePair{Queue: model.QueueFile{Name: name}}
	var queLines []string
	position := 1

	for gi, group := range groups {
		if !group.HasThickness {
			pair.Errors = append(pair.Errors, fmt.Sprintf("group %d: missing thickness, skipped", gi+1))
			continue
		}
		thickness := strconv.FormatFloat(group.Thickness, 'f', -1, 64)

		for ri, row := range group.Rows {
			wo := row.String("WO_Number")
			if wo == "" {
				pair.Errors = append(pair.Errors, fmt.Sprintf("group %d, row %d: missing work order number, skipped", gi+1, ri+1))
				continue
			}

			difName := cutFileName(wo, row)
			pair.CutFiles = append(pair.CutFiles, model.CutFile{
				Name: difName,
				Text: FormatCutFile(row, position),
			})
			queLines = append(queLines, fmt.Sprintf("%q %s %d %s", difName, difName, position, thickness))
			position++
		}
	}

	lines := append([]string{queueHeader}, queLines...)
	pair.Queue.Text = strings.Join(lines, crlf) + crlf
	return pair, nil
}

// cutFileName derives "<stem>.DIF" from the row's work order. The stem
// uses the base number so reprints overwrite the same cut file.
func cutFileName(wo string, row model.Row) string {
	base := wo
	if n, err := workorder.Parse(wo); err == nil {
		base = n.BaseNumber()
	}
	return MakeStem(base, row.String("number")) + ".DIF"
}
