// Package sjis re-encodes a generated UTF-8 document as Shift-JIS for
// consumers of legacy Oracle export tooling. Characters with no Shift-JIS
// mapping are substituted, never fatal.
package sjis

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Convert transcodes UTF-8 input to Shift-JIS, replacing unencodable runes.
func Convert(input []byte) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
	out, _, err := transform.Bytes(enc, input)
	if err != nil {
		return nil, fmt.Errorf("shift-jis conversion failed: %w", err)
	}
	return out, nil
}

// ConvertFile reads a UTF-8 file and writes its Shift-JIS counterpart.
func ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	converted, err := Convert(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, converted, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
