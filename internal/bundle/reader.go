package bundle

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

// Logger is the progress callback: a plain function, never a logging
// framework the core owns itself.
type Logger func(format string, args ...any)

// Options carries everything a Load call needs beyond the archive path
// itself.
type Options struct {
	HelperCmd string
	RepoPath  string
	Log       Logger
}

func (o Options) log(payload string) {
	if o.Log != nil {
		o.Log(payload)
	}
}

// progressPayload builds a compact structured line for the Logger
// callback out of key/value pairs, using sjson rather than constructing
// JSON by hand.
func progressPayload(loadID, phase string, kv ...any) string {
	payload := "{}"
	payload, _ = sjson.Set(payload, "load_id", loadID)
	payload, _ = sjson.Set(payload, "phase", phase)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		payload, _ = sjson.Set(payload, key, kv[i+1])
	}
	return payload
}

// Load opens the archive at path, extracts the six JSON tables, and
// falls back to the helper subprocess when items/locations are
// both missing or empty. Every progress message is tagged with a fresh
// load ID so a caller juggling multiple loads can tell them apart in
// its logs.
func Load(ctx context.Context, path string, opts Options) (Tables, error) {
	loadID := uuid.NewString()
	opts.log(progressPayload(loadID, "open", "path", path))

	rc, err := zip.OpenReader(path)
	if err != nil {
		return Tables{}, &ErrMissing{Path: path, Err: err}
	}
	defer rc.Close()

	raw, err := extractEntries(&rc.Reader)
	if err != nil {
		return Tables{}, fmt.Errorf("bundle: reading archive entries: %w", err)
	}

	tables, ok, err := decodeExtracted(raw)
	if err != nil {
		return Tables{}, err
	}
	if ok {
		opts.log(progressPayload(loadID, "extracted", "items", len(tables.Items), "locations", len(tables.Locations)))
		return tables, nil
	}

	if opts.HelperCmd == "" {
		return Tables{}, &ErrEmpty{Path: path}
	}
	opts.log(progressPayload(loadID, "helper-start", "cmd", opts.HelperCmd))
	tables, err = runHelper(ctx, opts.HelperCmd, path, opts.RepoPath)
	if err != nil {
		return Tables{}, err
	}
	opts.log(progressPayload(loadID, "helper-done", "items", len(tables.Items), "locations", len(tables.Locations)))
	return tables, nil
}

// extractEntries reads every zip entry whose name matches one of the
// six table suffixes under any "data/" prefix, returning their raw
// bytes keyed by bare table name ("game.json", not "data/game.json").
func extractEntries(r *zip.Reader) (map[string][]byte, error) {
	out := map[string][]byte{}
	for _, f := range r.File {
		name, ok := matchTableSuffix(f.Name)
		if !ok {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		out[name] = data
	}
	return out, nil
}

func matchTableSuffix(entryName string) (string, bool) {
	normalized := strings.ReplaceAll(entryName, "\\", "/")
	for _, name := range tableNames {
		if strings.HasSuffix(normalized, "data/"+name) {
			return name, true
		}
	}
	return "", false
}

// decodeExtracted turns the raw per-table bytes pulled straight from
// the archive into Tables. It reports ok=false (not an error) when
// items.json and locations.json are both missing or empty, which is
// the trigger for falling through to the helper subprocess.
func decodeExtracted(raw map[string][]byte) (Tables, bool, error) {
	items := raw["items.json"]
	locations := raw["locations.json"]
	if isEmptyJSON(items) && isEmptyJSON(locations) {
		return Tables{}, false, nil
	}

	var t Tables
	if err := unmarshalStrict(string(raw["game.json"]), &t.Game); err != nil {
		return Tables{}, false, fmt.Errorf("bundle: decoding game.json: %w", err)
	}
	if err := unmarshalStrict(string(items), &t.Items); err != nil {
		return Tables{}, false, fmt.Errorf("bundle: decoding items.json: %w", err)
	}
	if err := unmarshalStrict(string(locations), &t.Locations); err != nil {
		return Tables{}, false, fmt.Errorf("bundle: decoding locations.json: %w", err)
	}
	if err := unmarshalStrict(string(raw["categories.json"]), &t.Categories); err != nil {
		return Tables{}, false, fmt.Errorf("bundle: decoding categories.json: %w", err)
	}
	t.Yaml = decodeYamlOptionsBytes(raw["options.json"])
	if err := unmarshalStrict(string(raw["regions.json"]), &t.Regions); err != nil {
		return Tables{}, false, fmt.Errorf("bundle: decoding regions.json: %w", err)
	}
	return t, true, nil
}

func isEmptyJSON(b []byte) bool {
	s := strings.TrimSpace(string(b))
	return s == "" || s == "[]" || s == "{}" || s == "null"
}

// unmarshalStrict decodes raw (which may be empty) into dst, treating
// empty input as a no-op rather than an error so an absent/empty table
// leaves dst at its zero value.
func unmarshalStrict(raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
