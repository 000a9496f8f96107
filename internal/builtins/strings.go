package builtins

import (
	"regexp"
	"strings"
	"sync"

	"github.com/ISibboI/evalexpr/internal/evalerr"
	"github.com/ISibboI/evalexpr/internal/value"
)

// regexCache memoizes compiled patterns across calls. It is the one
// process-wide resource builtins are permitted (§5's "implementation
// detail of those builtins, not of the core").
var regexCache sync.Map // map[string]*regexp.Regexp

func compileRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, evalerr.Newf(evalerr.CustomMessage, evalerr.Position{}, "invalid regular expression %q: %v", pattern, err)
	}
	regexCache.Store(pattern, re)
	return re, nil
}

func stringArgs(arg value.Value, n int) ([]string, error) {
	vals, err := unpack(arg, n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// StrLen returns the number of bytes in s. Str_len(s): Int
func StrLen(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(int64(len(strs[0]))), nil
}

// ToUppercase returns s with every letter upper-cased.
func ToUppercase(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(strings.ToUpper(strs[0])), nil
}

// ToLowercase returns s with every letter lower-cased.
func ToLowercase(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(strings.ToLower(strs[0])), nil
}

// Trim removes leading and trailing whitespace from s.
func Trim(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(strings.TrimSpace(strs[0])), nil
}

// Contains reports whether s contains substr. Contains(s, substr): Boolean
func Contains(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(strings.Contains(strs[0], strs[1])), nil
}

// RegexMatches reports whether s matches pattern anywhere.
// Regex_matches(s, pattern): Boolean
func RegexMatches(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 2)
	if err != nil {
		return value.Value{}, err
	}
	re, err := compileRegex(strs[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(re.MatchString(strs[0])), nil
}

// RegexReplace replaces every match of pattern in s with replacement.
// Regex_replace(s, pattern, replacement): String
func RegexReplace(arg value.Value) (value.Value, error) {
	strs, err := stringArgs(arg, 3)
	if err != nil {
		return value.Value{}, err
	}
	re, err := compileRegex(strs[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.String(re.ReplaceAllString(strs[0], strs[2])), nil
}
