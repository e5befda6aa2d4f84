package visibility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-sung/AxQuery/pkg/axnode"
)

func TestIsExposed(t *testing.T) {
	t.Run("unmarked node is never exposed", func(t *testing.T) {
		el := axnode.NewElement(axnode.KindView)
		assert.False(t, IsExposed(el))
	})

	t.Run("marked node with unmarked ancestors is exposed", func(t *testing.T) {
		root := axnode.NewElement(axnode.KindView)
		button := axnode.NewElement(axnode.KindButton).SetAccessible(true)
		root.AddChild(button)

		assert.True(t, IsExposed(button))
	})

	t.Run("accessible ancestor swallows descendants", func(t *testing.T) {
		root := axnode.NewElement(axnode.KindView)
		card := axnode.NewElement(axnode.KindView).SetAccessible(true).SetLabel("Card")
		inner := axnode.NewElement(axnode.KindLabel).SetAccessible(true).SetField(axnode.FieldText, "Inner")
		root.AddChild(card)
		card.AddChild(inner)

		assert.True(t, IsExposed(card))
		assert.False(t, IsExposed(inner))
	})

	t.Run("unmarking the ancestor restores the descendant", func(t *testing.T) {
		root := axnode.NewElement(axnode.KindView)
		card := axnode.NewElement(axnode.KindView).SetAccessible(true)
		inner := axnode.NewElement(axnode.KindLabel).SetAccessible(true)
		root.AddChild(card)
		card.AddChild(inner)

		require.False(t, IsExposed(inner))
		card.SetAccessible(false)
		assert.True(t, IsExposed(inner))
	})

	t.Run("shadowing works across any chain depth", func(t *testing.T) {
		outer := axnode.NewElement(axnode.KindView).SetAccessible(true)
		middle := axnode.NewElement(axnode.KindView)
		leaf := axnode.NewElement(axnode.KindButton).SetAccessible(true)
		outer.AddChild(middle)
		middle.AddChild(leaf)

		assert.False(t, IsExposed(leaf))
	})
}

func TestEffectiveLabel_ExplicitWins(t *testing.T) {
	el := axnode.NewElement(axnode.KindLabel).
		SetLabel("Explicit").
		SetField(axnode.FieldText, "Rendered text")

	label := EffectiveLabel(el)
	require.NotNil(t, label)
	assert.Equal(t, "Explicit", *label)
}

func TestEffectiveLabel_EmptyExplicitFallsThrough(t *testing.T) {
	el := axnode.NewElement(axnode.KindLabel).
		SetLabel("").
		SetField(axnode.FieldText, "Rendered text")

	label := EffectiveLabel(el)
	require.NotNil(t, label)
	assert.Equal(t, "Rendered text", *label)
}

func TestEffectiveLabel_ImplicitRules(t *testing.T) {
	longText := strings.Repeat("a", longTextLabelLimit+1)

	tests := []struct {
		name string
		el   *axnode.Element
		want *string
	}{
		{
			name: "label uses rendered text",
			el:   axnode.NewElement(axnode.KindLabel).SetField(axnode.FieldText, "Hello"),
			want: ptr("Hello"),
		},
		{
			name: "button uses title",
			el:   axnode.NewElement(axnode.KindButton).SetField(axnode.FieldTitle, "Submit"),
			want: ptr("Submit"),
		},
		{
			name: "button falls back to attributed title",
			el:   axnode.NewElement(axnode.KindButton).SetField(axnode.FieldAttributedTitle, "Styled"),
			want: ptr("Styled"),
		},
		{
			name: "button prefers plain title over attributed",
			el: axnode.NewElement(axnode.KindButton).
				SetField(axnode.FieldTitle, "Plain").
				SetField(axnode.FieldAttributedTitle, "Styled"),
			want: ptr("Plain"),
		},
		{
			name: "text field uses placeholder",
			el:   axnode.NewElement(axnode.KindTextField).SetField(axnode.FieldPlaceholder, "Email"),
			want: ptr("Email"),
		},
		{
			name: "short text view content becomes label",
			el:   axnode.NewElement(axnode.KindTextView).SetField(axnode.FieldText, "Short note"),
			want: ptr("Short note"),
		},
		{
			name: "long text view content does not",
			el:   axnode.NewElement(axnode.KindTextView).SetField(axnode.FieldText, longText),
			want: nil,
		},
		{
			name: "switch on",
			el:   axnode.NewElement(axnode.KindSwitch).SetField(axnode.FieldOn, "1"),
			want: ptr("On"),
		},
		{
			name: "switch off",
			el:   axnode.NewElement(axnode.KindSwitch).SetField(axnode.FieldOn, "0"),
			want: ptr("Off"),
		},
		{
			name: "animating activity indicator",
			el:   axnode.NewElement(axnode.KindActivityIndicator).SetField(axnode.FieldAnimating, "1"),
			want: ptr("In progress"),
		},
		{
			name: "stopped activity indicator has no label",
			el:   axnode.NewElement(axnode.KindActivityIndicator).SetField(axnode.FieldAnimating, "0"),
			want: nil,
		},
		{
			name: "kind with no applicable rule",
			el:   axnode.NewElement(axnode.KindImage),
			want: nil,
		},
		{
			name: "unknown kind",
			el:   axnode.NewElement(axnode.Kind("custom-widget")),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveLabel(tt.el)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestEffectiveValue_ExplicitWins(t *testing.T) {
	el := axnode.NewElement(axnode.KindTextField).
		SetValue("explicit value").
		SetField(axnode.FieldText, "typed text")

	value := EffectiveValue(el)
	require.NotNil(t, value)
	assert.Equal(t, "explicit value", *value)
}

func TestEffectiveValue_ImplicitRules(t *testing.T) {
	tests := []struct {
		name string
		el   *axnode.Element
		want *string
	}{
		{
			name: "text field current text",
			el:   axnode.NewElement(axnode.KindTextField).SetField(axnode.FieldText, "user@example.com"),
			want: ptr("user@example.com"),
		},
		{
			name: "text view content",
			el:   axnode.NewElement(axnode.KindTextView).SetField(axnode.FieldText, "Body"),
			want: ptr("Body"),
		},
		{
			name: "slider numeric state",
			el:   axnode.NewElement(axnode.KindSlider).SetField(axnode.FieldNumeric, "50%"),
			want: ptr("50%"),
		},
		{
			name: "stepper numeric state",
			el:   axnode.NewElement(axnode.KindStepper).SetField(axnode.FieldNumeric, "3"),
			want: ptr("3"),
		},
		{
			name: "progress numeric state",
			el:   axnode.NewElement(axnode.KindProgress).SetField(axnode.FieldNumeric, "0.75"),
			want: ptr("0.75"),
		},
		{
			name: "date picker formatted date",
			el:   axnode.NewElement(axnode.KindDatePicker).SetField(axnode.FieldDate, "Aug 25, 2026"),
			want: ptr("Aug 25, 2026"),
		},
		{
			name: "switch on renders as 1",
			el:   axnode.NewElement(axnode.KindSwitch).SetField(axnode.FieldOn, "1"),
			want: ptr("1"),
		},
		{
			name: "switch off renders as 0",
			el:   axnode.NewElement(axnode.KindSwitch).SetField(axnode.FieldOn, "0"),
			want: ptr("0"),
		},
		{
			name: "activity indicator animating",
			el:   axnode.NewElement(axnode.KindActivityIndicator).SetField(axnode.FieldAnimating, "1"),
			want: ptr("animating"),
		},
		{
			name: "activity indicator stopped",
			el:   axnode.NewElement(axnode.KindActivityIndicator).SetField(axnode.FieldAnimating, "0"),
			want: ptr("stopped"),
		},
		{
			name: "label has no implicit value",
			el:   axnode.NewElement(axnode.KindLabel).SetField(axnode.FieldText, "Hello"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveValue(tt.el)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestRegisterKindRule(t *testing.T) {
	custom := axnode.Kind("test-gauge")
	err := RegisterKindRule(custom, KindRule{
		Value: func(n axnode.Node) *string { return n.Field(axnode.FieldNumeric) },
	})
	require.NoError(t, err)

	el := axnode.NewElement(custom).SetField(axnode.FieldNumeric, "7")
	value := EffectiveValue(el)
	require.NotNil(t, value)
	assert.Equal(t, "7", *value)

	// Registering the same kind twice is rejected
	assert.Error(t, RegisterKindRule(custom, KindRule{}))

	assert.Contains(t, RegisteredKinds(), "test-gauge")
}

func ptr(s string) *string {
	return &s
}
