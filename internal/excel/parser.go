package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Parser loads an order workbook and exposes its cells as a matrix.
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser creates a parser with a fresh file ID.
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// Load opens a workbook from raw bytes.
func (p *Parser) Load(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	p.file = file
	return nil
}

// FileID returns the ID assigned to this load.
func (p *Parser) FileID() string {
	return p.fileID
}

// SheetNames lists the workbook's sheets.
func (p *Parser) SheetNames() []string {
	if p.file == nil {
		return nil
	}
	return p.file.GetSheetList()
}

// PickSheet returns the preferred sheet when present, else the first sheet.
func (p *Parser) PickSheet(preferred string) (string, error) {
	if p.file == nil {
		return "", errors.New("no file loaded")
	}
	sheets := p.file.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if preferred != "" {
		for _, s := range sheets {
			if s == preferred {
				return s, nil
			}
		}
	}
	return sheets[0], nil
}

// Matrix returns every cell of a sheet as rows of trimmed-width strings.
func (p *Parser) Matrix(sheet string) ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}
	rows, err := p.file.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Close releases the underlying workbook.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
