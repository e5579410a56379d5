package model_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-objectmodel/pkg/model"
)

func TestEmptyType(t *testing.T) {
	typ := mustType(t, "A")
	if typ.Len() != 0 {
		t.Fatalf("expected empty table, got %d fields", typ.Len())
	}
	inst := typ.Empty()
	if err := inst.Validate(); err != nil {
		t.Fatalf("empty instance of empty type must validate: %v", err)
	}
}

func TestInheritanceMergesBaseFields(t *testing.T) {
	base := mustType(t, "A", model.WithField("foo", model.NewField()))
	derived := mustType(t, "B",
		model.WithBase(base),
		model.WithField("bar", model.NewField()),
	)

	if got := derived.Attrs(); !reflect.DeepEqual(got, []string{"foo", "bar"}) {
		t.Fatalf("expected inherited-then-own order, got %v", got)
	}
	if base.Len() != 1 {
		t.Fatalf("base table must not grow, got %d fields", base.Len())
	}
}

func TestSubclassOverridesInheritedField(t *testing.T) {
	baseSpec := model.NewField()
	ownSpec := model.NewField(model.Required())
	base := mustType(t, "A", model.WithField("foo", baseSpec))
	derived := mustType(t, "B",
		model.WithBase(base),
		model.WithField("foo", ownSpec),
	)

	got, _ := derived.Field("foo")
	if got != model.FieldSpec(ownSpec) {
		t.Fatalf("expected own spec to override inherited one")
	}
	if derived.Len() != 1 {
		t.Fatalf("override must not duplicate the field, got %d", derived.Len())
	}
}

func TestUnrelatedBaseCollisionFailsAtDefinitionTime(t *testing.T) {
	left := mustType(t, "A", model.WithField("foo", model.NewField()))
	right := mustType(t, "B", model.WithField("foo", model.NewField()))

	_, err := model.NewType("C", model.WithBase(left, right))
	var dup *model.DuplicateFieldDefinitionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldDefinitionError, got %v", err)
	}
	if dup.Field != "foo" || dup.Model != "C" {
		t.Fatalf("unexpected error identity: %+v", dup)
	}
}

func TestDiamondInheritanceOfSameSpecIsNotAConflict(t *testing.T) {
	shared := model.NewField()
	root := mustType(t, "Root", model.WithField("id", shared))
	left := mustType(t, "A", model.WithBase(root))
	right := mustType(t, "B", model.WithBase(root))

	merged, err := model.NewType("C", model.WithBase(left, right))
	if err != nil {
		t.Fatalf("diamond of identical spec must merge: %v", err)
	}
	if merged.Len() != 1 {
		t.Fatalf("expected a single id field, got %d", merged.Len())
	}
}

func TestOwnOverrideSilencesBaseCollision(t *testing.T) {
	left := mustType(t, "A", model.WithField("foo", model.NewField()))
	right := mustType(t, "B", model.WithField("foo", model.NewField()))

	_, err := model.NewType("C",
		model.WithBase(left, right),
		model.WithField("foo", model.NewField()),
	)
	if err != nil {
		t.Fatalf("own definition must override conflicting bases: %v", err)
	}
}

func TestDuplicateOwnDeclarationFails(t *testing.T) {
	_, err := model.NewType("A",
		model.WithField("foo", model.NewField()),
		model.WithField("foo", model.NewField()),
	)
	var dup *model.DuplicateFieldDefinitionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldDefinitionError, got %v", err)
	}
}

func TestExternalNameCollisionFails(t *testing.T) {
	_, err := model.NewType("A",
		model.WithField("foo", model.NewField(model.WithName("key"))),
		model.WithField("bar", model.NewField(model.WithName("key"))),
	)
	var dup *model.DuplicateFieldDefinitionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldDefinitionError for shared external name, got %v", err)
	}
}

func TestNilStaticDefaultRequiresAllowNull(t *testing.T) {
	_, err := model.NewType("A",
		model.WithField("foo", model.NewField(model.WithDefault(nil))),
	)
	if !errors.Is(err, model.ErrNilDefault) {
		t.Fatalf("expected ErrNilDefault, got %v", err)
	}

	_, err = model.NewType("B",
		model.WithField("foo", model.NewField(model.WithDefault(nil), model.AllowNull())),
	)
	if err != nil {
		t.Fatalf("nil default with allow-null must be legal: %v", err)
	}
}

func TestWithRegistryRegistersType(t *testing.T) {
	reg := model.NewRegistry()
	typ := mustType(t, "A", model.WithRegistry(reg))

	got, ok := reg.Lookup("A")
	if !ok || got != typ {
		t.Fatalf("expected type registered under its name")
	}

	_, err := model.NewType("A", model.WithRegistry(reg))
	if err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}
