// Package seed loads member records from files and keeps a store hydrated
// from them.
package seed

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/jsonldb"
	"github.com/maruel/memberstore/internal/models"
	"github.com/maruel/memberstore/internal/storage"
)

// Format is a seed file encoding.
type Format string

const (
	// FormatYAML is a YAML sequence of members.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON array of members.
	FormatJSON Format = "json"
	// FormatJSONL is one JSON member per line.
	FormatJSONL Format = "jsonl"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatJSONL}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown seed format %q: must be one of %v", s, Formats)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("cannot infer seed format from %q", path)
	}
}

// Decode reads members from r.
func Decode(r io.Reader, format Format) ([]*models.Member, error) {
	var members []*models.Member
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&members); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err == nil {
			return nil, stderrors.New("failed to parse yaml: more than one document")
		} else if err != io.EOF {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&members); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("failed to parse json: trailing content after offset %d", dec.InputOffset())
		}
	case FormatJSONL:
		rows, err := jsonldb.ReadJSONL[*models.Member](r)
		if err != nil {
			return nil, err
		}
		members = rows
	default:
		return nil, fmt.Errorf("unknown seed format %q", format)
	}
	if members == nil {
		members = []*models.Member{}
	}
	return members, nil
}

// Encode writes members to w.
func Encode(w io.Writer, format Format, members []*models.Member) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(members); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(members)
	case FormatJSONL:
		return jsonldb.WriteJSONL(w, members)
	default:
		return fmt.Errorf("unknown seed format %q", format)
	}
}

// Load reads a seed file, choosing the format from its extension.
func Load(path string) ([]*models.Member, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // User-specified seed path
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	members, err := Decode(f, format)
	if err != nil {
		return nil, errors.InvalidArgument("invalid seed file "+path).Wrap(err)
	}
	return members, nil
}

// Hydrate loads path and replaces the content of s with it.
func Hydrate(ctx context.Context, s *storage.MemberStore, path string) error {
	members, err := Load(path)
	if err != nil {
		return err
	}
	if err := s.SetMembers(members); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.InfoContext(ctx, "Hydrated member store", "path", path, "members", len(members))
	return nil
}
