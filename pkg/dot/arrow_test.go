package dot

import "testing"

func TestArrowShapeGrammar(t *testing.T) {
	tests := []struct {
		name  string
		shape ArrowShape
		want  string
	}{
		{"None", NoArrowShape(), "none"},
		{"Normal", NormalShape(FillFilled, SideBoth), "normal"},
		{"OpenNormal", NormalShape(FillOpen, SideBoth), "onormal"},
		{"OpenLeftNormal", NormalShape(FillOpen, SideLeft), "olnormal"},
		{"RightCrow", CrowShape(SideRight), "rcrow"},
		{"Curve", CurveShape(SideBoth), "curve"},
		{"OpenICurve", ICurveShape(FillOpen, SideBoth), "oicurve"},
		{"Diamond", DiamondShape(FillFilled, SideLeft), "ldiamond"},
		{"OpenDot", DotShape(FillOpen), "odot"},
		{"Inv", InvShape(FillFilled, SideBoth), "inv"},
		{"Tee", TeeShape(SideLeft), "ltee"},
		{"Vee", VeeShape(SideBoth), "vee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.dot(); got != tt.want {
				t.Errorf("dot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrowComposition(t *testing.T) {
	if !DefaultArrow().IsDefault() {
		t.Error("DefaultArrow().IsDefault() = false")
	}
	if NoArrow().IsDefault() {
		t.Error("NoArrow().IsDefault() = true")
	}
	if got := NormalArrow().dot(); got != "normal" {
		t.Errorf("NormalArrow().dot() = %q", got)
	}
	// Shapes concatenate outermost first.
	a := ArrowFrom(TeeShape(SideBoth), VeeShape(SideBoth))
	if got := a.dot(); got != "teevee" {
		t.Errorf("composed arrow = %q, want teevee", got)
	}
}
