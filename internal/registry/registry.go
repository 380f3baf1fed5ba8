// Package registry discovers and fetches GGUF model artifacts from the
// Hugging Face hub. There are no baked-in model lists: either the hub
// answers or model acquisition fails loudly.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/logger"
)

const (
	defaultHub   = "https://huggingface.co"
	fetchTimeout = 10 * time.Second

	// candidateLimit caps how many hub repositories are inspected for a
	// usable quantized file.
	candidateLimit = 6
)

// ModelInfo describes one downloadable model artifact.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	SizeMB      int    `json:"size_mb"`
	Description string `json:"description"`
}

// Filename returns the artifact file name encoded in the download URL.
func (m ModelInfo) Filename() string {
	parts := strings.Split(m.URL, "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "model.gguf"
	}
	return parts[len(parts)-1]
}

// Registry lists models from the hub.
type Registry struct {
	hubURL string
	client *http.Client
}

// New creates a registry against the public Hugging Face hub.
func New() *Registry {
	return NewWithHub(defaultHub)
}

// NewWithHub creates a registry against a specific hub base URL.
func NewWithHub(hubURL string) *Registry {
	return &Registry{
		hubURL: strings.TrimSuffix(hubURL, "/"),
		client: &http.Client{Timeout: fetchTimeout},
	}
}

type hubModel struct {
	ModelID string `json:"modelId"`
}

type hubFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Fetch lists small instruct GGUF models sorted by downloads. For each hub
// repository it inspects the file tree and keeps the first Q4_K_M .gguf
// artifact found.
func (r *Registry) Fetch(ctx context.Context) ([]ModelInfo, error) {
	searchURL := r.hubURL + "/api/models?search=GGUF+Q4_K_M&limit=10&sort=downloads"

	var hubModels []hubModel
	if err := r.getJSON(ctx, searchURL, &hubModels); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "fetch model list"), errors.ErrConfiguration)
	}
	if len(hubModels) == 0 {
		return nil, errors.Configurationf("no models found on the hub")
	}

	var models []ModelInfo
	for i, hm := range hubModels {
		if i >= candidateLimit {
			break
		}

		var files []hubFile
		treeURL := fmt.Sprintf("%s/api/models/%s/tree/main", r.hubURL, hm.ModelID)
		if err := r.getJSON(ctx, treeURL, &files); err != nil {
			logger.Logger.Debugw("skipping model, tree listing failed", "model", hm.ModelID, "error", err)
			continue
		}

		for _, f := range files {
			if !strings.Contains(strings.ToLower(f.Path), "q4_k_m") || !strings.HasSuffix(f.Path, ".gguf") {
				continue
			}
			models = append(models, r.describe(hm.ModelID, f))
			break
		}
	}

	if len(models) == 0 {
		return nil, errors.Configurationf("no compatible GGUF models found")
	}
	return models, nil
}

// Find returns the model with the given id, or the first available model
// when id is empty.
func (r *Registry) Find(ctx context.Context, id string) (ModelInfo, error) {
	models, err := r.Fetch(ctx)
	if err != nil {
		return ModelInfo{}, err
	}
	if id == "" {
		return models[0], nil
	}
	for _, m := range models {
		if m.ID == id {
			return m, nil
		}
	}
	return ModelInfo{}, errors.Configurationf("model %q not found", id)
}

func (r *Registry) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("hub returned HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// describe derives a short id, display name and size description from a hub
// repository id and the chosen artifact file.
func (r *Registry) describe(modelID string, f hubFile) ModelInfo {
	repoName := modelID
	owner := "unknown"
	if i := strings.IndexByte(modelID, '/'); i >= 0 {
		owner = modelID[:i]
		repoName = modelID[i+1:]
	}

	cleanName := strings.ReplaceAll(repoName, "-GGUF", "")
	cleanName = strings.ReplaceAll(cleanName, "-Q4_K_M", "")
	cleanName = strings.ReplaceAll(cleanName, "_", " ")

	var idParts []string
	for _, p := range strings.FieldsFunc(repoName, func(r rune) bool { return r == '-' || r == '_' }) {
		if p == "" || p == "GGUF" || p == "Q4" || p == "K" || p == "M" {
			continue
		}
		idParts = append(idParts, strings.ToLower(p))
		if len(idParts) == 3 {
			break
		}
	}

	sizeMB := int(f.Size / 1_000_000)
	sizeStr := fmt.Sprintf("%dMB", sizeMB)
	if sizeMB >= 1000 {
		sizeStr = fmt.Sprintf("%.1fGB", float64(sizeMB)/1000.0)
	}

	return ModelInfo{
		ID:          strings.Join(idParts, "-"),
		Name:        cleanName,
		URL:         fmt.Sprintf("%s/%s/resolve/main/%s", r.hubURL, modelID, f.Path),
		SizeMB:      sizeMB,
		Description: fmt.Sprintf("Q4_K_M | %s | by %s", sizeStr, owner),
	}
}
