package service

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/convert"
	"github.com/yurifrl/ofx2qif/pkg/parser"
)

const (
	InputExt  = ".qfx"
	OutputExt = ".qif"
)

var (
	ErrNoInput    = errors.New("input filename required")
	ErrOutputName = errors.New("cannot derive output filename")
	ErrRead       = errors.New("error reading input file")
	ErrCreate     = errors.New("error opening output file")
)

// Summary describes one converted file.
type Summary struct {
	Input        string
	Output       string
	Bytes        int
	InputDigest  string
	OutputDigest string
	convert.Result
}

type Processor struct {
	config    *config.Config
	logger    *log.Logger
	converter *convert.Converter
}

func NewProcessor(config *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config:    config,
		logger:    logger,
		converter: convert.New(logger),
	}
}

// ResolvePaths fills in the conventional names: an input without extension
// gets .qfx, a missing output is the input renamed to .qif (inside outputDir
// when set), and an output without extension gets .qif.
func ResolvePaths(input, output, outputDir string) (string, string, error) {
	if input == "" {
		return "", "", ErrNoInput
	}
	if filepath.Ext(input) == "" {
		input += InputExt
	}

	if output == "" {
		base := filepath.Base(input)
		if strings.EqualFold(filepath.Ext(base), ".xz") {
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		if ext == "" || stem == "" || base == "." || base == string(filepath.Separator) {
			return "", "", fmt.Errorf("%w: %s", ErrOutputName, input)
		}
		dir := filepath.Dir(input)
		if outputDir != "" {
			dir = outputDir
		}
		return input, filepath.Join(dir, stem+OutputExt), nil
	}

	if filepath.Ext(output) == "" {
		output += OutputExt
	}
	return input, output, nil
}

func (p *Processor) ProcessDirectory(dir string, opts convert.Options) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !parser.IsStatement(entry.Name()) {
			continue
		}
		s, err := p.ProcessFile(filepath.Join(dir, entry.Name()), "", opts)
		if err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
			continue
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// ProcessFile converts input into output. The input is read completely
// before anything is created, and the output only appears under its final
// name once it has been written in full.
func (p *Processor) ProcessFile(input, output string, opts convert.Options) (Summary, error) {
	in, out, err := ResolvePaths(input, output, p.config.GetOutputPath())
	if err != nil {
		return Summary{}, err
	}

	doc, err := ReadDocument(in)
	if err != nil {
		return Summary{}, fmt.Errorf("%w %s: %v", ErrRead, in, err)
	}
	p.logger.Debug("processing file", "path", in, "size", humanize.Bytes(uint64(len(doc))))

	var buf bytes.Buffer
	res, err := p.converter.Convert(doc, opts, &buf)
	if err != nil {
		return Summary{}, err
	}

	if err := writeFile(out, buf.Bytes()); err != nil {
		return Summary{}, err
	}

	p.logger.Debug("processed file successfully", "input", in, "output", out, "transactions", res.Transactions, "skipped", res.Skipped)
	return Summary{
		Input:        in,
		Output:       out,
		Bytes:        len(doc),
		InputDigest:  Digest(doc),
		OutputDigest: Digest(buf.Bytes()),
		Result:       res,
	}, nil
}

// ReadDocument loads a whole statement, decompressing .xz files.
func ReadDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		r = xzr
	}
	return io.ReadAll(r)
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrCreate, path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCreate, path, err)
	}
	return nil
}

// Digest is the hex BLAKE3-256 of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
