package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"hotel-checkin-backend/config"
	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

const (
	roomsPerType = 50
	// Insert cap per statement, matching the store's batch write limit.
	maxBatchSize = 500
)

func amenitiesJSON(items []string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

func buildRooms() []models.Room {
	rooms := make([]models.Room, 0, roomsPerType*2)

	for i := 1; i <= roomsPerType; i++ {
		rooms = append(rooms, models.Room{
			Name:        fmt.Sprintf("Normal Room %d", i),
			RoomNumber:  fmt.Sprintf("N%03d", i),
			Type:        models.RoomTypeNormal,
			Description: "Comfortable room with modern amenities, free WiFi, and essential facilities",
			Price:       99,
			Capacity:    2,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400",
			Amenities:   amenitiesJSON([]string{"WiFi", "TV", "AC", "Private Bathroom"}),
		})
	}

	for i := 1; i <= roomsPerType; i++ {
		rooms = append(rooms, models.Room{
			Name:        fmt.Sprintf("Premium Room %d", i),
			RoomNumber:  fmt.Sprintf("P%03d", i),
			Type:        models.RoomTypePremium,
			Description: "Luxurious room with premium features, stunning views, and premium amenities",
			Price:       249,
			Capacity:    4,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=400",
			Amenities:   amenitiesJSON([]string{"WiFi", "Smart TV", "AC", "Private Bathroom", "Mini Bar", "Room Service", "Balcony"}),
		})
	}

	return rooms
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

	ctx := context.Background()
	rooms := repository.NewGormRoomRepository(db)

	existing, err := rooms.Count(ctx)
	if err != nil {
		log.WithError(err).Fatal("counting rooms failed")
	}
	if existing > 0 {
		log.WithField("count", existing).Info("room inventory already exists, nothing to do")
		return
	}

	inventory := buildRooms()
	if err := rooms.CreateInBatches(ctx, inventory, maxBatchSize); err != nil {
		log.WithError(err).Fatal("inserting rooms failed")
	}

	log.WithFields(logrus.Fields{
		"normal":  roomsPerType,
		"premium": roomsPerType,
	}).Info("room inventory created")
}
