package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"production-plan/internal/api/models"

	"github.com/gin-gonic/gin/binding"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadPayload reads a production plan request from a .json, .yaml or .yml file
// and applies the same validation rules as the HTTP API.
func LoadPayload(path string) (*models.ProductionPlanRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req models.ProductionPlanRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &req)
	case ".json", "":
		err = json.Unmarshal(raw, &req)
	default:
		return nil, fmt.Errorf("unsupported payload format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("invalid payload %s: %w", path, err)
	}
	return &req, nil
}

// WritePlanJSON writes the plan items as indented JSON.
func WritePlanJSON(path string, items []models.ProductionPlanItem) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
