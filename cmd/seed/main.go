package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"kaineetam/internal/config"
	"kaineetam/internal/db"
	"kaineetam/internal/model"
	"kaineetam/internal/repository"
	"kaineetam/internal/service"
)

// seedBlessing describes one demo blessing plus its reported gifts.
type seedBlessing struct {
	recipient string
	sender    string
	upiID     string
	tone      model.Tone
	custom    string
	gifts     []seedGift
}

type seedGift struct {
	giver  string
	amount int64
	note   string
}

var demoBlessings = []seedBlessing{
	{
		recipient: "Asha",
		sender:    "Raj",
		upiID:     "raj@bank",
		tone:      model.ToneModern,
		custom:    "Happy Vishu from all of us!",
		gifts: []seedGift{
			{giver: "Maya", amount: 101, note: "Vishu ashamsakal!"},
			{giver: "Deepa", amount: 51, note: ""},
			{giver: "Arun", amount: 101, note: "Enjoy the sadya"},
		},
	},
	{
		recipient: "Appu",
		sender:    "Lakshmi",
		upiID:     "lakshmi@upi",
		tone:      model.ToneTraditional,
		gifts: []seedGift{
			{giver: "Gopan", amount: 501, note: "For the little one"},
		},
	},
	{
		recipient: "Meera",
		sender:    "Vishnu",
		upiID:     "vishnu.k@pay",
		tone:      model.ToneFunny,
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Blessing{}, &model.KaineetamLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	blessingRepo := repository.NewBlessingRepository(gormDB)
	kaineetamRepo := repository.NewKaineetamRepository(gormDB)

	// No cache for seeding; services degrade to direct DB access
	blessingService := service.NewBlessingService(blessingRepo, nil, service.NewUPIBuilder(), service.NewQRRenderer(nil))
	kaineetamService := service.NewKaineetamService(blessingRepo, kaineetamRepo)

	ctx := context.Background()
	created, gifts := 0, 0
	for _, seed := range demoBlessings {
		blessing, links, err := blessingService.Create(ctx, service.CreateBlessingInput{
			RecipientName: seed.recipient,
			SenderName:    seed.sender,
			UPIID:         seed.upiID,
			Tone:          seed.tone,
			CustomMessage: seed.custom,
		})
		if err != nil {
			log.Printf("Skipping blessing for %s: %v", seed.recipient, err)
			continue
		}
		created++
		log.Printf("Created blessing %s (%s -> %s), view at %s", blessing.Code, seed.sender, seed.recipient, links.View)

		for _, gift := range seed.gifts {
			if _, err := kaineetamService.Confirm(ctx, blessing.Code, gift.giver, decimal.NewFromInt(gift.amount), gift.note); err != nil {
				log.Printf("Skipping gift from %s: %v", gift.giver, err)
				continue
			}
			gifts++
		}
	}

	log.Printf("Seed complete: %d blessings, %d kaineetam entries", created, gifts)
}
