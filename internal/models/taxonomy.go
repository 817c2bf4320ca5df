package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ShirtColor is the closed set of shirt color categories the game plays with.
// ColorOther is the catch-all for anything the vision model returns that we
// can't place.
type ShirtColor string

const (
	ColorRed          ShirtColor = "red"
	ColorRoyalBlue    ShirtColor = "royal_blue"
	ColorGreen        ShirtColor = "green"
	ColorAquaBlue     ShirtColor = "aqua_blue"
	ColorVioletPurple ShirtColor = "violet_purple"
	ColorCanaryYellow ShirtColor = "canary_yellow"
	ColorOrange       ShirtColor = "orange"
	ColorTropicalPink ShirtColor = "tropical_pink"
	ColorOther        ShirtColor = "other"
)

// Expression is the closed set of facial expression categories.
// ExpressionSmile doubles as the fallback for unrecognized labels.
type Expression string

const (
	ExpressionSmile    Expression = "smile"
	ExpressionSleep    Expression = "sleep"
	ExpressionSurprise Expression = "surprise"
	ExpressionWink     Expression = "wink"
)

// AllColors and AllExpressions list the canonical tokens, mainly for
// validation and prompt construction.
var AllColors = []ShirtColor{
	ColorRed, ColorRoyalBlue, ColorGreen, ColorAquaBlue, ColorVioletPurple,
	ColorCanaryYellow, ColorOrange, ColorTropicalPink, ColorOther,
}

var AllExpressions = []Expression{
	ExpressionSmile, ExpressionSleep, ExpressionSurprise, ExpressionWink,
}

// colorKeywords maps each category to the substrings that select it.
// Order matters: the aqua family must be checked before the blue family,
// otherwise "sky blue" would match the bare "blue" keyword first.
// Japanese synonyms are included because the vision model occasionally
// answers in the language of the photo's context.
var colorKeywords = []struct {
	color ShirtColor
	kws   []string
}{
	{ColorAquaBlue, []string{"aqua_blue", "aqua", "sky", "light blue", "light-blue", "cyan", "turquoise", "teal", "水色", "空色", "シアン"}},
	{ColorRoyalBlue, []string{"royal_blue", "royalblue", "blue", "navy", "indigo", "cobalt", "青", "紺", "群青"}},
	{ColorRed, []string{"red", "crimson", "scarlet", "maroon", "赤"}},
	{ColorGreen, []string{"green", "lime", "olive", "emerald", "緑", "みどり"}},
	{ColorVioletPurple, []string{"violet_purple", "violet", "purple", "lavender", "紫"}},
	{ColorCanaryYellow, []string{"canary_yellow", "yellow", "lemon", "canary", "gold", "黄色"}},
	{ColorOrange, []string{"orange", "amber", "tangerine", "橙", "オレンジ"}},
	{ColorTropicalPink, []string{"tropical_pink", "pink", "hot pink", "fuchsia", "magenta", "rose", "桃色", "ピンク"}},
}

var expressionKeywords = []struct {
	expr Expression
	kws  []string
}{
	{ExpressionSmile, []string{"smile", "happy", "grin", "laugh", "笑顔", "笑"}},
	{ExpressionSleep, []string{"sleep", "asleep", "sleepy", "doz", "寝", "眠"}},
	{ExpressionSurprise, []string{"surprise", "astonish", "shock", "wow", "驚"}},
	{ExpressionWink, []string{"wink", "ウインク"}},
}

// NormalizeColor maps a free-text label from the vision model onto exactly
// one ShirtColor. It never fails: unknown or empty input returns ColorOther.
func NormalizeColor(s string) ShirtColor {
	if s == "" {
		return ColorOther
	}
	t := strings.ToLower(strings.TrimSpace(s))
	for _, group := range colorKeywords {
		for _, kw := range group.kws {
			if strings.Contains(t, kw) {
				return group.color
			}
		}
	}
	// The model may already return an exact canonical token.
	for _, c := range AllColors {
		if t == string(c) {
			return c
		}
	}
	return ColorOther
}

// NormalizeExpression maps a free-text label onto exactly one Expression.
// Unknown or empty input falls back to ExpressionSmile.
func NormalizeExpression(s string) Expression {
	if s == "" {
		return ExpressionSmile
	}
	t := strings.ToLower(strings.TrimSpace(s))
	for _, group := range expressionKeywords {
		for _, kw := range group.kws {
			if strings.Contains(t, kw) {
				return group.expr
			}
		}
	}
	for _, e := range AllExpressions {
		if t == string(e) {
			return e
		}
	}
	return ExpressionSmile
}

// UnmarshalYAML rejects unknown tokens. Wave configs are authored by hand, so
// unlike model output they should fail loudly rather than normalize.
func (c *ShirtColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for _, known := range AllColors {
		if ShirtColor(s) == known {
			*c = known
			return nil
		}
	}
	return fmt.Errorf("unknown shirt color %q", s)
}

func (e *Expression) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for _, known := range AllExpressions {
		if Expression(s) == known {
			*e = known
			return nil
		}
	}
	return fmt.Errorf("unknown expression %q", s)
}
