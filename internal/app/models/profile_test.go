package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileDocument_Merge(t *testing.T) {
	t.Run("untouched fields survive the merge", func(t *testing.T) {
		yes := true
		doc := &ProfileDocument{
			DataSource:       "manual",
			BasicInfo:        &BasicInfo{FirstName: "Dana", LastName: "Rivera"},
			Medications:      []Medication{{Name: "metformin"}},
			TakesMedications: &yes,
		}

		doc.Merge(&ProfileDocument{
			PhysicalMeasurements: &PhysicalMeasurements{Height: 170, Weight: 65},
		})

		assert.Equal(t, "manual", doc.DataSource)
		assert.Equal(t, "Dana", doc.BasicInfo.FirstName)
		assert.Len(t, doc.Medications, 1)
		assert.NotNil(t, doc.TakesMedications)
		assert.Equal(t, 170.0, doc.PhysicalMeasurements.Height)
	})

	t.Run("nested objects replace wholesale", func(t *testing.T) {
		doc := &ProfileDocument{
			BasicInfo: &BasicInfo{FirstName: "Dana", LastName: "Rivera", DateOfBirth: "1990-05-15"},
		}

		doc.Merge(&ProfileDocument{
			BasicInfo: &BasicInfo{FirstName: "Dee"},
		})

		assert.Equal(t, "Dee", doc.BasicInfo.FirstName)
		assert.Equal(t, "", doc.BasicInfo.LastName)
	})

	t.Run("gate flags overwrite only when the update carries them", func(t *testing.T) {
		yes := true
		no := false
		doc := &ProfileDocument{HasAllergies: &yes}

		doc.Merge(&ProfileDocument{TakesMedications: &no})

		assert.True(t, *doc.HasAllergies)
		assert.False(t, *doc.TakesMedications)
		assert.Nil(t, doc.HasMedicalConditions)
	})

	t.Run("nil update is a no-op", func(t *testing.T) {
		doc := &ProfileDocument{DataSource: "manual"}
		doc.Merge(nil)
		assert.Equal(t, "manual", doc.DataSource)
	})

	t.Run("empty collections in the update still overwrite", func(t *testing.T) {
		doc := &ProfileDocument{Medications: []Medication{{Name: "metformin"}}}
		doc.Merge(&ProfileDocument{Medications: []Medication{}})
		assert.Empty(t, doc.Medications)
	})
}
