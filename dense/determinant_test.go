package dense

import (
	"math"
	"testing"

	"github.com/matgo-dev/matgo/pkg/errors"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name      string
		a         Matrix
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "1x1",
			a:         Matrix{{-3.5}},
			want:      -3.5,
			tolerance: 0,
		},
		{
			name:      "2x2 closed form",
			a:         Matrix{{4, 7}, {2, 6}},
			want:      10,
			tolerance: 1e-12,
		},
		{
			name:      "3x3",
			a:         Matrix{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}},
			want:      -306,
			tolerance: 1e-9,
		},
		{
			name:      "identity",
			a:         Identity(4),
			want:      1,
			tolerance: 0,
		},
		{
			name:      "singular returns zero",
			a:         Matrix{{1, 2}, {2, 4}},
			want:      0,
			tolerance: 0,
		},
		{
			name:    "non-square input",
			a:       Matrix{{1, 2, 3}, {4, 5, 6}},
			wantErr: true,
		},
		{
			name:    "empty input",
			a:       Matrix{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Determinant(tt.a)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Determinant() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}

			// Cofactor expansion must agree on every valid input.
			cof, err := DeterminantCofactor(tt.a)
			if err != nil {
				t.Fatalf("DeterminantCofactor() error = %v", err)
			}
			if math.Abs(cof-tt.want) > tt.tolerance+1e-9 {
				t.Errorf("DeterminantCofactor() = %v, want %v", cof, tt.want)
			}
		})
	}
}

func TestDeterminantCofactorValidation(t *testing.T) {
	if _, err := DeterminantCofactor(Matrix{{1, 2, 3}, {4, 5, 6}}); err == nil {
		t.Error("expected error for non-square input")
	}
	if _, err := DeterminantCofactor(Matrix{}); err == nil {
		t.Error("expected error for empty input")
	}

	var dimErr *errors.DimensionError
	_, err := DeterminantCofactor(Matrix{{1, 2, 3}, {4, 5, 6}})
	if !errors.As(err, &dimErr) {
		t.Errorf("expected *DimensionError, got %v", err)
	}
}

// Both determinant algorithms must agree, up to floating-point rounding,
// on any non-singular input.
func TestDeterminantAlgorithmsAgree(t *testing.T) {
	fixtures := []Matrix{
		{{2}},
		{{1, 2}, {3, 4}},
		{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}},
		{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}},
		{{4, 3, 2, 1}, {3, 4, 3, 2}, {2, 3, 4, 3}, {1, 2, 3, 4}},
	}

	for _, a := range fixtures {
		elim, err := Determinant(a)
		if err != nil {
			t.Fatalf("Determinant(%v) error = %v", a, err)
		}
		cof, err := DeterminantCofactor(a)
		if err != nil {
			t.Fatalf("DeterminantCofactor(%v) error = %v", a, err)
		}
		if math.Abs(elim-cof) > 1e-9*math.Max(1, math.Abs(elim)) {
			t.Errorf("algorithms disagree on %v: elimination %v, cofactor %v", a, elim, cof)
		}
	}
}

func TestDeterminantSingularEmitsWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	got, err := Determinant(Matrix{{1, 2}, {2, 4}})
	if err != nil {
		t.Fatalf("Determinant() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Determinant() = %v, want 0", got)
	}

	var sw *errors.SingularityWarning
	if !errors.As(captured, &sw) {
		t.Fatalf("expected a *SingularityWarning, got %v", captured)
	}
	if sw.Op != "dense.Determinant" {
		t.Errorf("warning op = %q, want dense.Determinant", sw.Op)
	}
}

// The elimination path pivots blindly on the diagonal, so a matrix that is
// invertible but starts with a zero leading pivot is treated as singular.
// This mirrors the documented no-pivoting limitation.
func TestDeterminantZeroLeadingPivot(t *testing.T) {
	errors.SetWarningHandler(func(w error) {})
	defer errors.SetWarningHandler(func(w error) {})

	got, err := Determinant(Matrix{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatalf("Determinant() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Determinant() = %v, want 0 under the no-pivoting policy", got)
	}

	// The cofactor path has no pivots and reports the true value.
	cof, err := DeterminantCofactor(Matrix{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatalf("DeterminantCofactor() error = %v", err)
	}
	if cof != -1 {
		t.Errorf("DeterminantCofactor() = %v, want -1", cof)
	}
}
