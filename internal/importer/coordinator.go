package importer

import (
	"fmt"
	"io"
	"log"

	"github.com/angelglnd-coder/cler-vision-app/internal/calc"
	"github.com/angelglnd-coder/cler-vision-app/internal/emitter"
	"github.com/angelglnd-coder/cler-vision-app/internal/excel"
	"github.com/angelglnd-coder/cler-vision-app/internal/model"
	"github.com/angelglnd-coder/cler-vision-app/internal/schema"
	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

// Coordinator drives the pipeline: parse, detect, normalize, calculate,
// number, emit. Each stage is synchronous; the only I/O happens in the
// spreadsheet reader and the sequence authority.
type Coordinator struct {
	schemas     *schema.Registry
	calculators *calc.Registry
	authority   workorder.Authority
}

// NewCoordinator wires the pipeline stages together.
func NewCoordinator(schemas *schema.Registry, calculators *calc.Registry, authority workorder.Authority) *Coordinator {
	return &Coordinator{
		schemas:     schemas,
		calculators: calculators,
		authority:   authority,
	}
}

// ImportOptions controls one pipeline run.
type ImportOptions struct {
	Filename string
	Sheet    string // preferred sheet name, first sheet when empty
}

// Result is the state of one run after import. Rows are mutated in place
// by the later stages.
type Result struct {
	RunID       string      `json:"runId"`
	Filename    string      `json:"filename"`
	Sheet       string      `json:"sheet"`
	SchemaID    string      `json:"schemaId"`
	SchemaName  string      `json:"schemaName"`
	Score       float64     `json:"score"`
	HeaderRow   int         `json:"headerRow"`
	Headers     []string    `json:"headers"`
	Rows        []model.Row `json:"rows"`
	Diagnostics []string    `json:"diagnostics"`

	schema *model.Schema
}

// Schema exposes the detected schema.
func (r *Result) Schema() *model.Schema {
	return r.schema
}

// Import runs the read, detect, normalize and calculate stages.
func (c *Coordinator) Import(reader io.Reader, opts ImportOptions) (*Result, error) {
	p := excel.NewParser()
	if err := p.Load(reader); err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer p.Close()

	sheet, err := p.PickSheet(opts.Sheet)
	if err != nil {
		return nil, err
	}
	matrix, err := p.Matrix(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	detection := excel.Detect(matrix, c.schemas.All(), excel.DefaultScanRows)
	if !detection.Usable(excel.MinDetectionScore) {
		return nil, fmt.Errorf("no schema matched sheet %s: %v", sheet, excel.DetectionFailure(c.schemas.All()))
	}
	sc := detection.Schema

	headers, raws := excel.BuildRawRows(matrix, detection.HeaderRow)
	result := &Result{
		RunID:      p.FileID(),
		Filename:   opts.Filename,
		Sheet:      sheet,
		SchemaID:   sc.ID,
		SchemaName: sc.Name,
		Score:      detection.Score,
		HeaderRow:  detection.HeaderRow,
		Headers:    headers,
		schema:     sc,
	}

	missing, extra, msgs := excel.ValidateHeaders(headers, sc)
	result.Diagnostics = append(result.Diagnostics, msgs...)
	if len(missing) > 0 || len(extra) > 0 {
		log.Printf("schema %s: header drift on %s (missing %d, extra %d)", sc.Name, sheet, len(missing), len(extra))
	}

	result.Rows = excel.NormalizeRows(raws, sc)

	if sc.Processing.NeedsCalculation {
		c.calculate(result)
	}
	return result, nil
}

// calculate runs the device-matched calculator over every row and merges
// the outputs back into the row. Valid fields land under the field name,
// failed fields keep their reason under <field>_err; a failed base curve
// is also surfaced as a run diagnostic.
func (c *Coordinator) calculate(result *Result) {
	pinned := c.calculators.ByID(result.schema.Processing.Calculator)
	for i, row := range result.Rows {
		calculator := pinned
		if calculator == nil {
			calculator = c.calculators.ByDevice(row.String("Device"))
		}
		fields := calculator.ComputeRow(row)
		for name, fr := range fields {
			if fr.Valid {
				row[name] = fr.Value
			} else {
				row[name+"_err"] = fr.Err
			}
		}
		if bc, found := fields["BC1_BC2"]; found && !bc.Valid {
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("row %d: %s: %s", i+1, calculator.ID(), bc.Err))
		}
	}
}

// GenerateNumbers assigns work-order numbers to the run's rows. Schemas
// that do not take work orders are rejected.
func (c *Coordinator) GenerateNumbers(result *Result) error {
	if result.schema != nil && !result.schema.Processing.NeedsWOGeneration {
		return fmt.Errorf("schema %s does not take work order numbers", result.SchemaName)
	}
	diags, err := workorder.NewAllocator(c.authority).Assign(result.Rows)
	if err != nil {
		return err
	}
	result.Diagnostics = append(result.Diagnostics, diags...)
	return nil
}

// EmitOptions controls manufacturing-file generation for one run.
type EmitOptions struct {
	QueueName    string
	Thickness    float64
	HasThickness bool
}

// Emit produces the queue index and cut files for the run's rows. When no
// thickness is given it is seeded from the first row that carries one.
func (c *Coordinator) Emit(result *Result, opts EmitOptions) (model.FilePair, error) {
	group := model.Group{
		Thickness:    opts.Thickness,
		HasThickness: opts.HasThickness,
		Rows:         result.Rows,
	}
	if !group.HasThickness {
		for _, row := range result.Rows {
			if t, found := rowThickness(row); found {
				group.Thickness = t
				group.HasThickness = true
				break
			}
		}
	}
	return emitter.Generate(opts.QueueName, []model.Group{group})
}

func rowThickness(row model.Row) (float64, bool) {
	for _, f := range []string{"Queue_Thickness", "CT_width", "CT"} {
		switch t := row[f].(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		}
	}
	return 0, false
}
