// File: builder.go
// Title: Specification Builder
// Description: Incremental assembly of a Specification. Typed setters
//              record presence so Build can tell explicit values from
//              interpreter-level defaults, and mirror every value into
//              the generic Params map.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial builder

package problem

import (
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
)

// Interpreter-level defaults for attributes absent at Build time
const (
	DefaultDeckType           = "STANDARD"
	DefaultDeckSize           = 52
	DefaultDrawCount          = 1
	DefaultUniqueLetters      = true
	DefaultDigits             = 3
	DefaultMaxDigit           = 9
	DefaultDivisibilityDigits = 2
	DefaultFactor             = 2
	DefaultOperationType      = "INCREASE"
	DefaultRule               = "digits are rearranged"
	DefaultDividend           = "X"
	DefaultDivisor            = 1
	DefaultRemainder          = 0
	DefaultBoardSize          = 8
	DefaultSequential         = true
)

// DefaultUrn returns the urn used when no contents are declared
func DefaultUrn() ast.Counts {
	return ast.NewCounts(
		ast.Count{Key: "RED", N: 3},
		ast.Count{Key: "BLUE", N: 5},
		ast.Count{Key: "GREEN", N: 2},
		ast.Count{Key: "WHITE", N: 1},
		ast.Count{Key: "BLACK", N: 4},
	)
}

// DefaultDrawnBalls returns the drawn balls used when only a count is
// declared: one RED, then one BLUE and one GREEN as the count allows
func DefaultDrawnBalls(count int) ast.Counts {
	var drawn ast.Counts
	if count <= 0 {
		return drawn
	}
	drawn.Set("RED", 1)
	if count > 1 {
		drawn.Set("BLUE", 1)
	}
	if count > 2 {
		drawn.Set("GREEN", 1)
	}
	return drawn
}

// optional remembers whether a value was set explicitly
type optional[T any] struct {
	value T
	set   bool
}

func (o *optional[T]) put(v T) {
	o.value, o.set = v, true
}

func (o optional[T]) or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

type cardsDraft struct {
	deckType        optional[string]
	deckSize        optional[int]
	drawCount       optional[int]
	withReplacement optional[bool]
	targets         []Card
	countConditions []CountCondition
}

type wordsDraft struct {
	alphabet      string
	length        int
	uniqueLetters optional[bool]
	conditions    []string
}

type numbersDraft struct {
	digits            optional[int]
	maxDigit          optional[int]
	firstNotZero      bool
	distinct          bool
	adjacentDifferent bool
	order             string
	comparison        *Comparison
}

type equationsDraft struct {
	unknowns     optional[int]
	coefficients []int
	sum          int
	domain       string
	constraints  []string
}

type ballsDraft struct {
	urn        ast.Counts
	drawn      ast.Counts
	drawCount  optional[int]
	sequential optional[bool]
}

type divisibilityDraft struct {
	digits         optional[int]
	rule           optional[string]
	factor         optional[int]
	operationType  optional[string]
	divisibleBy    int
	sequence       string
	digitPositions []string
	conditions     []string
}

type remaindersDraft struct {
	dividend  optional[string]
	divisor   optional[int]
	remainder optional[int]
}

type chessDraft struct {
	boardHeight optional[int]
	boardWidth  optional[int]
	pieces      ast.Counts
	attacking   bool
}

// Builder assembles a Specification. The zero value is ready to use. A
// Builder is not safe for concurrent use.
type Builder struct {
	kind            Kind
	taskName        string
	calculationType string
	conditions      []string
	params          Params

	cards        cardsDraft
	words        wordsDraft
	numbers      numbersDraft
	equations    equationsDraft
	balls        ballsDraft
	divisibility divisibilityDraft
	remainders   remaindersDraft
	chess        chessDraft
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Kind returns the kind selected so far
func (b *Builder) Kind() Kind { return b.kind }

// SetKind selects the active variant; the last call wins
func (b *Builder) SetKind(k Kind) { b.kind = k }

// Set stores a raw attribute that has no typed field
func (b *Builder) Set(key string, value interface{}) { b.params.Set(key, value) }

// Common attributes

func (b *Builder) SetTaskName(name string) {
	b.taskName = name
	b.params.Set("taskName", name)
}

func (b *Builder) SetCalculationType(calc string) {
	b.calculationType = calc
	b.params.Set("calculationType", calc)
}

// AddCondition records a general free-form condition
func (b *Builder) AddCondition(cond string) {
	b.conditions = append(b.conditions, cond)
	b.params.Set("conditions", b.conditions)
}

// Cards

func (b *Builder) SetDeckType(deckType string) {
	b.cards.deckType.put(deckType)
	b.params.Set("deckType", deckType)
}

func (b *Builder) SetDeckSize(size int) {
	b.cards.deckSize.put(size)
	b.params.Set("deckSize", size)
}

func (b *Builder) SetDrawCount(count int) {
	b.cards.drawCount.put(count)
	b.params.Set("drawCount", count)
}

func (b *Builder) SetWithReplacement(with bool) {
	b.cards.withReplacement.put(with)
	b.params.Set("withReplacement", with)
}

func (b *Builder) AddTargetCard(c Card) {
	b.cards.targets = append(b.cards.targets, c)
	names := make([]string, len(b.cards.targets))
	for i, t := range b.cards.targets {
		names[i] = t.String()
	}
	b.params.Set("targetCards", names)
}

func (b *Builder) AddCountCondition(c CountCondition) {
	b.cards.countConditions = append(b.cards.countConditions, c)
	conds := make([]string, len(b.cards.countConditions))
	for i, cc := range b.cards.countConditions {
		conds[i] = cc.String()
	}
	b.params.Set("countConditions", conds)
}

// Words

func (b *Builder) SetAlphabet(alphabet string) {
	b.words.alphabet = alphabet
	b.params.Set("alphabet", alphabet)
}

func (b *Builder) SetWordLength(length int) {
	b.words.length = length
	b.params.Set("wordLength", length)
}

func (b *Builder) SetUniqueLetters(unique bool) {
	b.words.uniqueLetters.put(unique)
	b.params.Set("uniqueLetters", unique)
}

func (b *Builder) AddWordCondition(cond string) {
	b.words.conditions = append(b.words.conditions, cond)
	b.params.Set("wordConditions", b.words.conditions)
}

// Equations

func (b *Builder) SetUnknowns(n int) {
	b.equations.unknowns.put(n)
	b.params.Set("unknowns", n)
}

func (b *Builder) SetSum(sum int) {
	b.equations.sum = sum
	b.params.Set("sum", sum)
}

func (b *Builder) SetDomain(domain string) {
	b.equations.domain = domain
	b.params.Set("domain", domain)
}

func (b *Builder) AddConstraint(constraint string) {
	b.equations.constraints = append(b.equations.constraints, constraint)
	b.params.Set("constraints", b.equations.constraints)
}

func (b *Builder) SetCoefficients(coefficients []int) {
	b.equations.coefficients = append([]int(nil), coefficients...)
	b.params.Set("coefficients", b.equations.coefficients)
}

// Numbers

func (b *Builder) SetNumberDigits(n int) {
	b.numbers.digits.put(n)
	b.params.Set("digits", n)
}

func (b *Builder) SetMaxDigit(n int) {
	b.numbers.maxDigit.put(n)
	b.params.Set("maxDigit", n)
}

func (b *Builder) SetFirstNotZero(v bool) {
	b.numbers.firstNotZero = v
	b.params.Set("firstNotZero", v)
}

func (b *Builder) SetDistinct(v bool) {
	b.numbers.distinct = v
	b.params.Set("distinct", v)
}

func (b *Builder) SetAdjacentDifferent(v bool) {
	b.numbers.adjacentDifferent = v
	b.params.Set("adjacentDifferent", v)
}

func (b *Builder) SetOrder(order string) {
	b.numbers.order = order
	b.params.Set("order", order)
}

// SetComparison records sum(left) op sum(right) over digit positions
func (b *Builder) SetComparison(left []string, op string, right []string) {
	b.numbers.comparison = &Comparison{
		Left:     append([]string(nil), left...),
		Operator: op,
		Right:    append([]string(nil), right...),
	}
	b.params.Set("compareLeft", left)
	b.params.Set("compareOperator", op)
	b.params.Set("compareRight", right)
}

// Divisibility

func (b *Builder) SetDivisibilityDigits(n int) {
	b.divisibility.digits.put(n)
	b.params.Set("digits", n)
}

func (b *Builder) SetRule(rule string) {
	b.divisibility.rule.put(rule)
	b.params.Set("rule", rule)
}

func (b *Builder) SetFactor(n int) {
	b.divisibility.factor.put(n)
	b.params.Set("factor", n)
}

func (b *Builder) SetOperationType(op string) {
	b.divisibility.operationType.put(op)
	b.params.Set("operationType", op)
}

func (b *Builder) SetDivisibleBy(n int) {
	b.divisibility.divisibleBy = n
	b.params.Set("divisibleBy", n)
}

func (b *Builder) SetTransformationSequence(seq string) {
	b.divisibility.sequence = seq
	b.params.Set("transformationSequence", seq)
}

func (b *Builder) AddDigitPosition(position string) {
	b.divisibility.digitPositions = append(b.divisibility.digitPositions, position)
	b.params.Set("digitPositions", b.divisibility.digitPositions)
}

// AddDivisibilityCondition records a condition of the divisibility
// problem; it is also a general condition
func (b *Builder) AddDivisibilityCondition(cond string) {
	b.divisibility.conditions = append(b.divisibility.conditions, cond)
	b.AddCondition(cond)
}

// Remainders

func (b *Builder) SetDividend(dividend string) {
	b.remainders.dividend.put(dividend)
	b.params.Set("dividend", dividend)
}

func (b *Builder) SetDivisor(n int) {
	b.remainders.divisor.put(n)
	b.params.Set("divisor", n)
}

func (b *Builder) SetRemainder(n int) {
	b.remainders.remainder.put(n)
	b.params.Set("remainder", n)
}

// Balls

// AddUrnBalls adds n balls of color to the urn
func (b *Builder) AddUrnBalls(color string, n int) {
	color = strings.ToUpper(color)
	b.balls.urn.Add(color, n)
	total, _ := b.balls.urn.Get(color)
	b.params.Set("ball_"+strings.ToLower(color), total)
	b.params.Set("contents", b.balls.urn.Format(" ", ", "))
	b.params.Set("totalBalls", b.balls.urn.Total())
}

// AddDrawnBalls adds n balls of color to the drawn set
func (b *Builder) AddDrawnBalls(color string, n int) {
	color = strings.ToUpper(color)
	b.balls.drawn.Add(color, n)
	total, _ := b.balls.drawn.Get(color)
	b.params.Set("draw_"+strings.ToLower(color), total)
	b.params.Set("draw_balls", b.balls.drawn.Format(" ", ", "))
	b.params.Set("drawCount", b.balls.drawn.Total())
}

func (b *Builder) SetBallDrawCount(n int) {
	b.balls.drawCount.put(n)
	b.params.Set("drawCount", n)
}

func (b *Builder) SetSequential(sequential bool) {
	b.balls.sequential.put(sequential)
	b.params.Set("drawType", drawType(sequential))
}

// Chess

func (b *Builder) SetBoardHeight(n int) {
	b.chess.boardHeight.put(n)
	b.params.Set("boardHeight", n)
}

func (b *Builder) SetBoardWidth(n int) {
	b.chess.boardWidth.put(n)
	b.params.Set("boardWidth", n)
}

// AddPieces adds n pieces of the named type
func (b *Builder) AddPieces(piece string, n int) {
	b.chess.pieces.Add(strings.ToUpper(piece), n)
	b.params.Set("pieces", b.chess.pieces.Format(": ", ", "))
	b.params.Set("totalPieces", b.chess.pieces.Total())
}

func (b *Builder) SetAttacking(attacking bool) {
	b.chess.attacking = attacking
	b.params.Set("attacking", attacking)
}

func drawType(sequential bool) string {
	if sequential {
		return "SEQUENTIAL"
	}
	return "SIMULTANEOUS"
}

// Build resolves defaults for the active variant and returns the
// finished specification. The builder may be reused afterwards; the
// result shares no memory with it.
func (b *Builder) Build() *Specification {
	s := &Specification{
		kind:            b.kind,
		taskName:        b.taskName,
		calculationType: b.calculationType,
		conditions:      append([]string(nil), b.conditions...),
		params:          b.params.Clone(),
	}

	switch b.kind {
	case KindCards:
		v := b.buildCards()
		s.cards = &v
	case KindWords:
		v := b.buildWords()
		s.words = &v
	case KindNumbers:
		v := b.buildNumbers()
		s.numbers = &v
	case KindEquations:
		v := b.buildEquations()
		s.equations = &v
	case KindBalls:
		v := b.buildBalls()
		s.balls = &v
	case KindDivisibility:
		v := b.buildDivisibility()
		s.divisibility = &v
	case KindRemainders:
		v := b.buildRemainders()
		s.remainders = &v
	case KindChess:
		v := b.buildChess()
		s.chess = &v
	}

	s.fields = make(map[string]interface{})
	for _, f := range s.typedFields() {
		s.fields[f.key] = f.value
		s.params.Set(f.key, f.value)
	}
	return s
}

func (b *Builder) buildCards() Cards {
	d := b.cards
	return Cards{
		DeckType:        d.deckType.or(DefaultDeckType),
		DeckSize:        d.deckSize.or(DefaultDeckSize),
		DrawCount:       d.drawCount.or(DefaultDrawCount),
		WithReplacement: d.withReplacement.or(false),
		Targets:         d.targets,
		CountConditions: d.countConditions,
	}.clone()
}

func (b *Builder) buildWords() Words {
	d := b.words
	return Words{
		Alphabet:      d.alphabet,
		Length:        d.length,
		UniqueLetters: d.uniqueLetters.or(DefaultUniqueLetters),
		Conditions:    d.conditions,
	}.clone()
}

func (b *Builder) buildNumbers() Numbers {
	d := b.numbers
	n := Numbers{
		Digits:            d.digits.or(DefaultDigits),
		MaxDigit:          d.maxDigit.or(DefaultMaxDigit),
		FirstNotZero:      d.firstNotZero,
		Distinct:          d.distinct,
		AdjacentDifferent: d.adjacentDifferent,
		Order:             d.order,
		Comparison:        d.comparison,
	}.clone()
	n.Description = describeNumbers(n)
	return n
}

func (b *Builder) buildEquations() Equations {
	d := b.equations
	return Equations{
		Unknowns:     d.unknowns.or(len(d.coefficients)),
		Coefficients: d.coefficients,
		Sum:          d.sum,
		Domain:       d.domain,
		Constraints:  d.constraints,
	}.clone()
}

// buildBalls derives the draw count from an explicit drawn set when
// there is one, then from the BALLS block, then from a top-level DRAW
func (b *Builder) buildBalls() Balls {
	d := b.balls
	v := Balls{
		Urn:        d.urn,
		Drawn:      d.drawn,
		DrawCount:  d.drawCount.or(b.cards.drawCount.or(DefaultDrawCount)),
		Sequential: d.sequential.or(DefaultSequential),
	}.clone()
	if v.Urn.Len() == 0 {
		v.Urn = DefaultUrn()
	}
	if v.Drawn.Len() > 0 {
		v.DrawCount = v.Drawn.Total()
	} else {
		v.Drawn = DefaultDrawnBalls(v.DrawCount)
	}
	return v
}

func (b *Builder) buildDivisibility() Divisibility {
	d := b.divisibility
	v := Divisibility{
		Digits:                 d.digits.or(DefaultDivisibilityDigits),
		Rule:                   d.rule.or(DefaultRule),
		Factor:                 d.factor.or(DefaultFactor),
		OperationType:          d.operationType.or(DefaultOperationType),
		DivisibleBy:            d.divisibleBy,
		TransformationSequence: d.sequence,
		DigitPositions:         d.digitPositions,
		Conditions:             d.conditions,
	}.clone()
	v.Description = describeDivisibility(v, d.factor.set)
	return v
}

func (b *Builder) buildRemainders() Remainders {
	d := b.remainders
	return Remainders{
		Dividend:  d.dividend.or(DefaultDividend),
		Divisor:   d.divisor.or(DefaultDivisor),
		Remainder: d.remainder.or(DefaultRemainder),
	}
}

func (b *Builder) buildChess() Chess {
	d := b.chess
	return Chess{
		BoardHeight: d.boardHeight.or(DefaultBoardSize),
		BoardWidth:  d.boardWidth.or(DefaultBoardSize),
		Pieces:      d.pieces,
		Attacking:   d.attacking,
	}.clone()
}
