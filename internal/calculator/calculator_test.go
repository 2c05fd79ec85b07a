package calculator

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string returns zero", input: "", want: 0},
		{name: "one number", input: "1", want: 1},
		{name: "two numbers", input: "1,2", want: 3},
		{name: "multiple numbers", input: "1,2,3,4,5", want: 15},
		{name: "newline delimiter", input: "1\n2,3", want: 6},
		{name: "custom delimiter", input: "//;\n1;2", want: 3},
		{name: "numbers above 1000 ignored", input: "1\n2,3000", want: 3},
		{name: "1000 is kept", input: "1000,1", want: 1001},
		{name: "1001 is dropped", input: "1001,1", want: 1},
		{name: "zero", input: "0", want: 0},
		{name: "explicit plus sign", input: "+5,1", want: 6},
		{name: "header with empty body", input: "//;\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdd_NegativeNumbers(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		message   string
		negatives []int
	}{
		{name: "single negative", input: "1,-2", message: "Negative numbers: -2", negatives: []int{-2}},
		{name: "all negatives in order", input: "-3,1\n-1,-7", message: "Negative numbers: -3,-1,-7", negatives: []int{-3, -1, -7}},
		{name: "negative with big number", input: "5000,-1", message: "Negative numbers: -1", negatives: []int{-1}},
		{name: "custom delimiter", input: "//;\n-1;2;-2000", message: "Negative numbers: -1,-2000", negatives: []int{-1, -2000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.input)
			require.Error(t, err)

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.negatives, ve.Negatives)
		})
	}
}

func TestAdd_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		token    string
		position int
	}{
		{name: "letters", input: "1,a", token: "a", position: 1},
		{name: "consecutive delimiters", input: "1,,2", token: "", position: 1},
		{name: "trailing delimiter", input: "1,2,", token: "", position: 2},
		{name: "float", input: "1.5", token: "1.5", position: 0},
		{name: "spaces", input: "1, 2", token: " 2", position: 1},
		{name: "format error wins over negatives", input: "-1,x", token: "x", position: 1},
		{name: "out of range", input: "99999999999999999999", token: "99999999999999999999", position: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.input)
			require.Error(t, err)

			var fe *apperr.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.token, fe.Token)
			assert.Equal(t, tt.position, fe.Position)
		})
	}
}

func TestAdd_MalformedHeader(t *testing.T) {
	_, err := Add("//;1;2")

	var he *apperr.HeaderError
	require.True(t, errors.As(err, &he))
}

func TestAdd_CustomDelimiterDoesNotLeak(t *testing.T) {
	got, err := Add("//;\n1;2")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = Add("1;2")
	var fe *apperr.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "1;2", fe.Token)
}

func TestAdd_Idempotent(t *testing.T) {
	inputs := []string{"", "1,2", "//;\n1;2", "1\n2,3000"}
	for _, in := range inputs {
		first, err := Add(in)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Add(in)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestAdd_PropertySumOfSmallNumbers(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		count := rnd.Intn(20) + 1
		var sb strings.Builder
		want := 0
		for j := 0; j < count; j++ {
			if j > 0 {
				if rnd.Intn(2) == 0 {
					sb.WriteByte(',')
				} else {
					sb.WriteByte('\n')
				}
			}
			n := rnd.Intn(MaxValue + 1)
			want += n
			sb.WriteString(strconv.Itoa(n))
		}

		got, err := Add(sb.String())
		require.NoError(t, err, "input %q", sb.String())
		assert.Equal(t, want, got, "input %q", sb.String())
	}
}

func TestAdd_PropertyNegativesReported(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		count := rnd.Intn(10) + 1
		parts := make([]string, count)
		var negatives []int
		for j := range parts {
			n := rnd.Intn(4000) - 2000
			if n < 0 {
				negatives = append(negatives, n)
			}
			parts[j] = strconv.Itoa(n)
		}
		if len(negatives) == 0 {
			parts = append(parts, "-1")
			negatives = append(negatives, -1)
		}

		_, err := Add(strings.Join(parts, ","))

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, negatives, ve.Negatives)
		assert.Equal(t, apperr.NewNegativeNumbers(negatives).Message, ve.Message)
	}
}

func TestAdd_PropertyLargeValuesNeverCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(1000))

	for i := 0; i < 100; i++ {
		small := rnd.Intn(MaxValue + 1)
		large := MaxValue + 1 + rnd.Intn(1_000_000)

		got, err := Add(strconv.Itoa(large) + "\n" + strconv.Itoa(small))
		require.NoError(t, err)
		assert.Equal(t, small, got)
	}
}

func TestCalculate_Breakdown(t *testing.T) {
	res, err := Calculate("//;\n1;2000,3")
	require.NoError(t, err)

	assert.Equal(t, 4, res.Sum)
	assert.Equal(t, []int{1, 2000, 3}, res.Numbers)
	assert.Equal(t, []int{2000}, res.Ignored)
	assert.Equal(t, []string{",", "\n", ";"}, res.Delimiters)
}

func TestCalculate_EmptyInput(t *testing.T) {
	res, err := Calculate("")
	require.NoError(t, err)

	assert.Zero(t, res.Sum)
	assert.Empty(t, res.Numbers)
	assert.Empty(t, res.Ignored)
}

func TestCalculator_LogsAndDelegates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(WithLogger(logger))

	got, err := c.Add("1,2")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Contains(t, buf.String(), "Calculation done")

	_, err = c.Add("1,-2")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "kind=validation")
}

func TestCalculator_ConcurrentCalls(t *testing.T) {
	c := New()
	inputs := map[string]int{
		"//;\n1;2": 3,
		"1,2":      3,
		"1\n2,3":   6,
		"//|\n5|5": 10,
	}

	var wg sync.WaitGroup
	for in, want := range inputs {
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func(in string, want int) {
				defer wg.Done()
				got, err := c.Add(in)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}(in, want)
		}
	}
	wg.Wait()
}
