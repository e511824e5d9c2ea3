package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/ofx2qif/pkg/models"
)

type FileType string

const (
	QFX FileType = "qfx"
	OFX FileType = "ofx"
	QXF FileType = "qxf"
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessBytes returns every transaction of a statement in document order.
// Records without an amount are left out.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]*models.Transaction, error) {
	fileType := DetectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)
	if fileType == "" {
		return nil, fmt.Errorf("unknown file type: %s", filename)
	}

	doc := string(data)
	var transactions []*models.Transaction
	for b := range Blocks(doc) {
		tx, ok := Transform(b.Text(doc))
		if !ok {
			p.logger.Debug("record without amount, skipping", "offset", b.Start)
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// DetectType maps a statement filename to its type by extension. Unknown
// extensions give "".
func DetectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".qfx":
		return QFX
	case ".ofx":
		return OFX
	case ".qxf":
		return QXF
	}
	return ""
}

// IsStatement reports whether name looks like a statement file, compressed
// or not.
func IsStatement(name string) bool {
	return DetectType(strings.TrimSuffix(strings.ToLower(name), ".xz")) != ""
}
