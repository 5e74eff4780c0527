package duplo

import "testing"

func TestIsValidPolicy(t *testing.T) {
	tests := []struct {
		policy Policy
		want   bool
	}{
		{PolicyOpaque, true},
		{PolicyStrict, true},
		{Policy(""), false},
		{Policy("lenient"), false},
	}

	for _, tt := range tests {
		if got := IsValidPolicy(tt.policy); got != tt.want {
			t.Errorf("IsValidPolicy(%q) = %v, want %v", tt.policy, got, tt.want)
		}
	}
}

func TestIsValidDirective(t *testing.T) {
	tests := []struct {
		directive Directive
		want      bool
	}{
		{DirectiveDeep, true},
		{DirectiveOpaque, true},
		{DirectiveShallow, true},
		{DirectiveSkip, true},
		{Directive(""), false},
		{Directive("copy"), false},
	}

	for _, tt := range tests {
		if got := IsValidDirective(tt.directive); got != tt.want {
			t.Errorf("IsValidDirective(%q) = %v, want %v", tt.directive, got, tt.want)
		}
	}
}
