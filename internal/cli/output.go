package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

type idGetter interface{ GetID() int }

// Success outputs successful operation result. In quiet mode a value with
// an ID prints the ID and a slice of such values prints one ID per line.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if ids, ok := collectIDs(data); ok {
			for _, id := range ids {
				fmt.Printf("%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint is the fallback for data without a dedicated renderer
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

func collectIDs(data any) ([]int, bool) {
	if g, ok := data.(idGetter); ok {
		return []int{g.GetID()}, true
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, false
	}
	ids := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		g, ok := v.Index(i).Interface().(idGetter)
		if !ok {
			return nil, false
		}
		ids = append(ids, g.GetID())
	}
	return ids, true
}
