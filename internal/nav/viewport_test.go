package nav

import "testing"

func TestClassify(t *testing.T) {
	c := Classifier{Breakpoint: 900}
	tests := []struct {
		width int
		want  Class
	}{
		{400, Mobile},
		{899, Mobile},
		{900, Desktop},
		{1440, Desktop},
		{0, Desktop},
		{-1, Desktop},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.width); got != tt.want {
			t.Fatalf("Classify(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestClassifyZeroBreakpointUsesDefault(t *testing.T) {
	var c Classifier
	if got := c.Classify(DefaultBreakpoint - 1); got != Mobile {
		t.Fatalf("expected mobile below default breakpoint, got %v", got)
	}
	if got := c.Classify(DefaultBreakpoint); got != Desktop {
		t.Fatalf("expected desktop at default breakpoint, got %v", got)
	}
}
