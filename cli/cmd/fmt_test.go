package cmd

import (
	"context"
	"errors"
	"testing"
)

func TestFmtCommands(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{
			name:   "simple expression",
			source: "1 + 2 * 3",
		},
		{
			name:   "multiple expressions",
			source: "let x = 1\nprint x\nif x == 1 then 1 else 0",
		},
		{
			name:    "syntax error",
			source:  "1 + + 2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.source)

			commands := map[string]interface {
				Run(context.Context) error
			}{
				"native": &Native{Source: path},
				"json":   &JSON{Indent: 2, Source: path},
				"yaml":   &YAML{Indent: 2, Source: path},
			}

			for name, command := range commands {
				err := command.Run(context.Background())
				if (err != nil) != tt.wantErr {
					t.Errorf("%s: error = %v, wantErr %v",
						name, err, tt.wantErr)
				}

				if tt.wantErr && !errors.Is(err, ErrParseSource) {
					t.Errorf("%s: error = %v, want ErrParseSource",
						name, err)
				}
			}
		})
	}
}
