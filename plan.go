package duplo

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the clone tag with sentinel
	sentinel.Tag("clone")
}

// typePlan describes how to clone one struct type. Plans are built once per
// type and cached; see registry.go.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

// fieldPlan describes how to clone a single exported field.
type fieldPlan struct {
	index     []int  // reflect.Value.FieldByIndex access path
	name      string // field name for error messages
	directive Directive
}

// buildRootPlan scans T with sentinel and converts its metadata into a plan.
// Non-struct types get an empty plan; their cloning needs no field dispatch.
func buildRootPlan[T any]() (*typePlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return &typePlan{typeName: rt.String()}, nil
	}

	spec := sentinel.Scan[T]()
	plan, err := planFromMetadata(rt, spec)
	if err != nil {
		return nil, err
	}
	storePlan(rt, plan)
	return plan, nil
}

// buildPlan constructs a plan for a struct type met during a walk. Types
// already scanned by sentinel are converted from their registered metadata;
// anything else is scanned directly.
func buildPlan(rt reflect.Type) (*typePlan, error) {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return planFromMetadata(rt, spec)
	}

	plan := &typePlan{typeName: rt.String()}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		directive := DirectiveDeep
		if val, ok := sf.Tag.Lookup("clone"); ok {
			directive = Directive(val)
			if !IsValidDirective(directive) {
				return nil, newPlanError(ErrInvalidTag, sf.Name, val)
			}
		}

		plan.fields = append(plan.fields, fieldPlan{
			index:     sf.Index,
			name:      sf.Name,
			directive: directive,
		})
	}
	return plan, nil
}

// planFromMetadata converts sentinel field metadata into a clone plan.
func planFromMetadata(rt reflect.Type, spec sentinel.Metadata) (*typePlan, error) {
	plan := &typePlan{typeName: spec.TypeName}
	if plan.typeName == "" {
		plan.typeName = rt.String()
	}

	for _, field := range spec.Fields {
		directive := DirectiveDeep
		if val, ok := field.Tags["clone"]; ok {
			directive = Directive(val)
			if !IsValidDirective(directive) {
				return nil, newPlanError(ErrInvalidTag, field.Name, val)
			}
		}

		plan.fields = append(plan.fields, fieldPlan{
			index:     append([]int{}, field.Index...),
			name:      field.Name,
			directive: directive,
		})
	}
	return plan, nil
}
