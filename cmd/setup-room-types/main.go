package main

import (
	"encoding/json"
	"errors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-checkin-backend/config"
	"hotel-checkin-backend/models"
)

func amenitiesJSON(items []string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

func roomTypes() []models.RoomType {
	return []models.RoomType{
		{
			Name:        "Normal Room",
			Type:        models.RoomTypeNormal,
			Description: "Comfortable room with modern amenities, free WiFi, and essential facilities",
			Price:       99,
			Capacity:    2,
			TotalCount:  50,
			Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400",
			Amenities:   amenitiesJSON([]string{"WiFi", "TV", "AC", "Private Bathroom"}),
		},
		{
			Name:        "Premium Room",
			Type:        models.RoomTypePremium,
			Description: "Luxurious room with premium features, stunning views, and premium amenities",
			Price:       249,
			Capacity:    4,
			TotalCount:  50,
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=400",
			Amenities:   amenitiesJSON([]string{"WiFi", "Smart TV", "AC", "Private Bathroom", "Mini Bar", "Room Service", "Balcony"}),
		},
	}
}

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info(".env not found; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}

	for _, rt := range roomTypes() {
		var existing models.RoomType
		err := db.Where("type = ?", rt.Type).First(&existing).Error
		switch {
		case err == nil:
			rt.ID = existing.ID
			rt.CreatedAt = existing.CreatedAt
			if err := db.Save(&rt).Error; err != nil {
				log.WithError(err).WithField("type", rt.Type).Fatal("updating room type failed")
			}
			log.WithField("type", rt.Type).Info("room type updated")
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&rt).Error; err != nil {
				log.WithError(err).WithField("type", rt.Type).Fatal("creating room type failed")
			}
			log.WithFields(logrus.Fields{
				"type":       rt.Type,
				"totalCount": rt.TotalCount,
			}).Info("room type created")
		default:
			log.WithError(err).WithField("type", rt.Type).Fatal("loading room type failed")
		}
	}
}
