package seeding

import (
	"time"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/models"
)

// DemoTasks returns the starter tasks written to a fresh identity's task
// collection on first load.
func DemoTasks() []models.Task {
	now := time.Now().UTC()
	return []models.Task{
		{
			ID:          uuid.New(),
			Title:       "Complete project setup",
			Description: "Set up the development environment and install dependencies",
			Status:      models.TaskStatusCompleted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "Design user interface",
			Description: "Create wireframes and design the task manager interface",
			Status:      models.TaskStatusIncomplete,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// DemoProperties returns the starter listings written to an empty property
// collection on first load. Both belong to the demo owner and come
// pre-approved so the marketplace is browsable out of the box.
func DemoProperties() []models.Property {
	now := time.Now().UTC()
	return []models.Property{
		{
			ID:          uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"),
			Title:       "Modern Downtown Apartment",
			Description: "Beautiful 2-bedroom apartment in the heart of the city with stunning views.",
			Price:       2500,
			Location:    "Downtown",
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1200,
			Type:        models.PropertyTypeApartment,
			Amenities:   []string{"WiFi", "Parking", "Gym", "Pool"},
			Images:      []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800"},
			OwnerID:     DemoOwnerID,
			OwnerName:   "Property Owner",
			IsApproved:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"),
			Title:       "Cozy Suburban House",
			Description: "Family-friendly house with garden and quiet neighborhood.",
			Price:       1800,
			Location:    "Suburbs",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1800,
			Type:        models.PropertyTypeHouse,
			Amenities:   []string{"WiFi", "Parking", "Garden", "Pet-friendly"},
			Images:      []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800"},
			OwnerID:     DemoOwnerID,
			OwnerName:   "Property Owner",
			IsApproved:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
