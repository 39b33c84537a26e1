package render

import (
	"context"
	"testing"

	"github.com/matzehuels/ornatree/pkg/errors"
)

func TestConvertWithoutBinary(t *testing.T) {
	old := converter
	converter = "ornatree-no-such-converter"
	defer func() { converter = old }()

	if Available() {
		t.Fatal("Available() should be false for a missing binary")
	}
	_, err := ToPNG(context.Background(), []byte("<svg/>"), 2)
	if got := errors.GetCode(err); got != errors.ErrCodeUnsupported {
		t.Errorf("ToPNG code = %s, want %s", got, errors.ErrCodeUnsupported)
	}
	_, err = ToPDF(context.Background(), []byte("<svg/>"))
	if got := errors.GetCode(err); got != errors.ErrCodeUnsupported {
		t.Errorf("ToPDF code = %s, want %s", got, errors.ErrCodeUnsupported)
	}
}
