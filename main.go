package main

import (
	"log"

	"github.com/greencity/wastetrack/config"
	"github.com/greencity/wastetrack/db"
	"github.com/greencity/wastetrack/server"
	"github.com/greencity/wastetrack/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)

	authRepo := db.NewAuthRepo(gormDB)
	complaintRepo := db.NewComplaintRepo(gormDB)
	userDataRepo := db.NewUserDataRepo(gormDB)

	assetService, err := services.NewAssetService(conf)
	if err != nil {
		log.Fatalf("error setting up asset storage: %v", err)
	}
	authService := services.NewAuthService(authRepo, conf)
	complaintService := services.NewComplaintService(complaintRepo, assetService)
	userDataService := services.NewUserDataService(userDataRepo)

	s := &server.Server{
		Config:              conf,
		AuthRepository:      authRepo,
		AuthService:         authService,
		ComplaintService:    complaintService,
		UserDataService:     userDataService,
		AssetService:        assetService,
		ComplaintRepository: complaintRepo,
		UserDataRepository:  userDataRepo,
	}

	s.Start()

	if err := gormDB.Close(); err != nil {
		log.Printf("error closing database: %v", err)
	}
}
