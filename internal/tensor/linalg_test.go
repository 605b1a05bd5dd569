package tensor

import "testing"

func TestTransposeDefault(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	got := Transpose(a)
	if !got.Shape().Equal(Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v, want (3, 2)", got.Shape())
	}
	assertValues(t, got, []float64{1, 4, 2, 5, 3, 6}, "matrix transpose")
}

func TestTransposePermutation(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	got := Transpose(a, 1, 2, 0)
	if !got.Shape().Equal(Shape{2, 2, 2}) {
		t.Fatalf("Transpose shape = %v, want (2, 2, 2)", got.Shape())
	}
	// out[i][j][k] = a[k][i][j]
	assertValues(t, got, []float64{1, 5, 2, 6, 3, 7, 4, 8}, "cyclic permutation")
}

func TestTransposeRoundTrip(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, Shape{2, 3, 2})
	perm := []int{2, 0, 1}
	back := Transpose(Transpose(a, perm...), InversePermutation(perm)...)
	if !back.Shape().Equal(a.Shape()) {
		t.Fatalf("round trip shape = %v, want %v", back.Shape(), a.Shape())
	}
	assertValues(t, back, a.Data(), "inverse permutation round trip")
}

func TestTransposeInvalid(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	for _, axes := range [][]int{{0}, {0, 0}, {0, 2}, {1, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Transpose(%v) did not panic", axes)
				}
			}()
			Transpose(a, axes...)
		}()
	}
}

func TestTensordotShape(t *testing.T) {
	tests := []struct {
		a, b    Shape
		axes    int
		want    Shape
		wantErr bool
	}{
		{Shape{2, 3}, Shape{3, 4}, 1, Shape{2, 4}, false},
		{Shape{2, 3}, Shape{3}, 1, Shape{2}, false},
		{Shape{2}, Shape{3}, 0, Shape{2, 3}, false},
		{Shape{2, 3, 4}, Shape{4, 3, 5}, 2, Shape{2, 5}, false},
		{Shape{2, 3}, Shape{4, 5}, 1, nil, true},
		{Shape{2, 3}, Shape{3, 4}, 3, nil, true},
		{Shape{2, 3}, Shape{3, 4}, -1, nil, true},
		// Reversed pairing: a's axis -1 must match b's axis 0.
		{Shape{2, 3, 4}, Shape{3, 4, 5}, 2, nil, true},
	}
	for _, tt := range tests {
		got, err := TensordotShape(tt.a, tt.b, tt.axes)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TensordotShape(%v, %v, %d) err = nil, want error", tt.a, tt.b, tt.axes)
			}
			continue
		}
		if err != nil {
			t.Errorf("TensordotShape(%v, %v, %d) err = %v", tt.a, tt.b, tt.axes, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("TensordotShape(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.axes, got, tt.want)
		}
	}
}

func TestTensordotMatrixVector(t *testing.T) {
	a, _ := FromRows([][]float64{{2, 3}, {4, 5}})
	b, _ := FromSlice([]float64{6, 7}, Shape{2})
	got := Tensordot(a, b, 1)
	if !got.Shape().Equal(Shape{2}) {
		t.Fatalf("Tensordot shape = %v, want (2)", got.Shape())
	}
	assertValues(t, got, []float64{33, 59}, "matrix-vector product")
}

func TestTensordotMatrixMatrix(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{5, 6}, {7, 8}})
	got := Tensordot(a, b, 1)
	assertValues(t, got, []float64{19, 22, 43, 50}, "matrix-matrix product")
}

func TestTensordotOuterProduct(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{2})
	b, _ := FromSlice([]float64{10, 20, 30}, Shape{3})
	got := Tensordot(a, b, 0)
	if !got.Shape().Equal(Shape{2, 3}) {
		t.Fatalf("Tensordot shape = %v, want (2, 3)", got.Shape())
	}
	assertValues(t, got, []float64{10, 20, 30, 20, 40, 60}, "outer product")
}

func TestTensordotFullContraction(t *testing.T) {
	// a is (2, 3); its trailing axes pair with b's leading axes reversed,
	// so b must be (3, 2): sum_{i,j} a[i][j] * b[j][i].
	a, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	got := Tensordot(a, b, 2)
	if got.NDim() != 0 {
		t.Fatalf("Tensordot shape = %v, want scalar", got.Shape())
	}
	// 1*7 + 2*9 + 3*11 + 4*8 + 5*10 + 6*12 = 212
	if got.Data()[0] != 212 {
		t.Errorf("Tensordot = %v, want 212", got.Data()[0])
	}
}

func TestTensordotShapeMismatchPanics(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	defer func() {
		if recover() == nil {
			t.Fatal("Tensordot with mismatched axes did not panic")
		}
	}()
	Tensordot(a, b, 1)
}
