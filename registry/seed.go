package registry

import "github.com/aargomedo/astracore-backend/models"

// DefaultProjects seeds the registry on first load. Edits afterwards
// only ever happen through Update.
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          "orbital-vision",
			Title:       "Orbital Vision Pipeline",
			Description: "Satellite imagery segmentation pipeline with automated retraining.",
			Details:     "End-to-end MLOps pipeline for multispectral satellite imagery: ingestion, tiling, model serving and drift-triggered retraining on spot GPU nodes.",
			Tags:        []string{"Python", "MLOps", "GCP", "Transformer"},
		},
		{
			ID:          "deep-diagnostics",
			Title:       "Deep Diagnostics",
			Description: "Anomaly detection for industrial telemetry streams.",
			Tags:        []string{"AI", "Monitoring", "PostgreSQL"},
		},
		{
			ID:          "cluster-commander",
			Title:       "Cluster Commander",
			Description: "Job orchestration dashboard for an HPC research cluster.",
			Tags:        []string{"Golang", "HPC", "Slurm", "Docker"},
		},
	}
}
