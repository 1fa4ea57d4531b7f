package bundle

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os/exec"
	"time"

	"github.com/tidwall/gjson"
)

// extractScript is the built-in extraction script handed to the helper
// interpreter over stdin when a bundle carries executable extraction
// code rather than pre-computed JSON.
//
//go:embed extract.py
var extractScript string

// helperTimeout is the hard wall-clock cap on the extraction subprocess:
// it is killed if it runs longer than this.
const helperTimeout = 30 * time.Second

// runHelper invokes helperCmd with extractScript on stdin and the two
// environment variables the script expects, and decodes its single
// combined JSON object into Tables. ctx is checked for cancellation
// before the subprocess is started; once it is running, the process is
// killed when helperTimeout expires or when ctx itself is cancelled,
// since the timeout context is derived from ctx.
func runHelper(ctx context.Context, helperCmd, archivePath, repoPath string) (Tables, error) {
	if err := ctx.Err(); err != nil {
		return Tables{}, err
	}

	runCtx, cancel := context.WithTimeout(ctx, helperTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, helperCmd)
	cmd.Stdin = bytes.NewReader([]byte(extractScript))
	cmd.Env = append(cmd.Environ(),
		"APWORLD_PATH="+archivePath,
		"ECOSYSTEM_REPO_PATH="+repoPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return Tables{}, &HelperError{Reason: "timed out after 30s", Err: runCtx.Err()}
		}
		return Tables{}, &HelperError{Reason: fmt.Sprintf("exited with error (stderr: %s)", stderr.String()), Err: err}
	}

	return decodeHelperOutput(stdout.Bytes())
}

// decodeHelperOutput pulls the six named tables out of the helper's
// single dynamic JSON object by key, using gjson since the object's
// shape (particularly options.json's heterogeneous per-option values)
// is not a good fit for a rigid encoding/json struct.
func decodeHelperOutput(raw []byte) (Tables, error) {
	if !gjson.ValidBytes(raw) {
		return Tables{}, &HelperError{Reason: "output is not valid JSON", Err: fmt.Errorf("%d bytes", len(raw))}
	}
	root := gjson.ParseBytes(raw)

	var t Tables
	if err := unmarshalStrict(root.Get("game").Raw, &t.Game); err != nil {
		return Tables{}, &HelperError{Reason: "decoding game table", Err: err}
	}
	if err := unmarshalStrict(root.Get("items").Raw, &t.Items); err != nil {
		return Tables{}, &HelperError{Reason: "decoding items table", Err: err}
	}
	if err := unmarshalStrict(root.Get("locations").Raw, &t.Locations); err != nil {
		return Tables{}, &HelperError{Reason: "decoding locations table", Err: err}
	}
	if err := unmarshalStrict(root.Get("categories").Raw, &t.Categories); err != nil {
		return Tables{}, &HelperError{Reason: "decoding categories table", Err: err}
	}
	t.Yaml = decodeYamlOptions(root.Get("options"))
	t.Regions = map[string]RegionDoc{}
	if err := unmarshalStrict(root.Get("regions").Raw, &t.Regions); err != nil {
		return Tables{}, &HelperError{Reason: "decoding regions table", Err: err}
	}
	return t, nil
}

// decodeYamlOptionsBytes is decodeYamlOptions for raw options.json
// bytes pulled directly from the archive (as opposed to a sub-value of
// the helper's combined object).
func decodeYamlOptionsBytes(raw []byte) map[string]int {
	if len(raw) == 0 {
		return map[string]int{}
	}
	return decodeYamlOptions(gjson.ParseBytes(raw))
}

// decodeYamlOptions reads options.json's per-option object, coercing
// the "default" field to an int regardless of whether it was written
// as a JSON bool or a JSON number; every other key in the per-option
// object is ignored.
func decodeYamlOptions(options gjson.Result) map[string]int {
	out := map[string]int{}
	options.ForEach(func(name, val gjson.Result) bool {
		def := val.Get("default")
		switch def.Type {
		case gjson.True:
			out[name.String()] = 1
		case gjson.False:
			out[name.String()] = 0
		case gjson.Number:
			out[name.String()] = int(def.Num)
		default:
			out[name.String()] = 0
		}
		return true
	})
	return out
}
