// Package mockdata holds the fixed sample trips served whenever the trip
// store is unreachable or empty, so the product stays demoable without live
// credentials.
package mockdata

import "tripmate/models"

func f(v float64) *float64 { return &v }

// SampleTrips returns a fresh copy of the demo trip set. Callers may mutate
// the result freely.
func SampleTrips() []models.Trip {
	return []models.Trip{
		{
			ID:          "seoul-spring",
			UserID:      "demo-user",
			Title:       "Spring in Seoul, 4 days",
			Destination: "Seoul, South Korea",
			StartDate:   "2025-04-02",
			EndDate:     "2025-04-05",
			Summary:     "Cherry-blossom season highlights",
			Status:      models.TripStatusDraft,
			Timezone:    "Asia/Seoul",
			PublicSlug:  "seoul-spring",
			Highlights:  []string{"Bukchon Hanok Village", "Gwangjang Market food alley", "Namsan Tower at night"},
			BudgetTotal: 1200000,
			Budget: &models.Budget{
				LodgingPerNight: 130000,
				DailyFood:       60000,
				Transport:       40000,
				Etc:             30000,
			},
			Days: []models.Day{
				{
					ID:     "seoul-spring-day1",
					TripID: "seoul-spring",
					Date:   "2025-04-02",
					Title:  "Gwanghwamun & Bukchon",
					Blocks: []models.Block{
						{
							ID: "ss-d1-b1", TripID: "seoul-spring", DayID: "seoul-spring-day1",
							StartTime: "09:30", EndTime: "11:00",
							Title: "Gyeongbokgung Palace walk", Memo: "Rent hanbok before entering",
							Category: models.CategoryMorning, Source: models.SourceUser,
							Lat: f(37.579617), Lng: f(126.977041), Address: "161 Sajik-ro, Jongno-gu, Seoul",
						},
						{
							ID: "ss-d1-b2", TripID: "seoul-spring", DayID: "seoul-spring-day1",
							StartTime: "12:30", EndTime: "14:00",
							Title: "Gwangjang Market", Memo: "Mayak gimbap and bindaetteok",
							Category: models.CategoryLunch, Source: models.SourceUser,
							Lat: f(37.570388), Lng: f(126.999495), Address: "88 Changgyeonggung-ro, Jongno-gu, Seoul",
						},
					},
				},
				{
					ID:     "seoul-spring-day2",
					TripID: "seoul-spring",
					Date:   "2025-04-03",
					Title:  "Namsan & Myeongdong",
					Blocks: []models.Block{
						{
							ID: "ss-d2-b1", TripID: "seoul-spring", DayID: "seoul-spring-day2",
							StartTime: "10:00", EndTime: "12:00",
							Title: "Namsan Tower viewpoint", Memo: "Take the cable car",
							Category: models.CategoryMorning, Source: models.SourceUser,
							Lat: f(37.5511694), Lng: f(126.9882266),
						},
						{
							ID: "ss-d2-b2", TripID: "seoul-spring", DayID: "seoul-spring-day2",
							StartTime: "13:00", EndTime: "14:00",
							Title: "Myeongdong shopping",
							Category: models.CategoryAfternoon, Source: models.SourceUser,
							Lat: f(37.563617), Lng: f(126.982108),
						},
					},
				},
			},
		},
		{
			ID:          "jeju-summer",
			UserID:      "demo-user",
			Title:       "Jeju summer getaway",
			Destination: "Jeju, South Korea",
			StartDate:   "2025-07-11",
			EndDate:     "2025-07-15",
			Summary:     "Beaches and coastal drives",
			Status:      models.TripStatusScheduled,
			PublicSlug:  "jeju-summer",
			Highlights:  []string{"Hyeopjae Beach", "Udo island loop", "Black pork alley"},
			Budget: &models.Budget{
				LodgingPerNight: 150000,
				DailyFood:       70000,
				Transport:       50000,
				Etc:             40000,
			},
		},
		{
			ID:          "tokyo-fall",
			UserID:      "demo-user",
			Title:       "Tokyo autumn leaves",
			Destination: "Tokyo, Japan",
			StartDate:   "2025-10-03",
			EndDate:     "2025-10-07",
			Summary:     "City foliage and cafe hopping",
			Status:      models.TripStatusCompleted,
			PublicSlug:  "tokyo-fall",
			Highlights:  []string{"Meiji Shrine", "Shimokitazawa cafes", "Tokyo Tower"},
		},
	}
}

// SamplePlanDetail is the richer demo trip used when a share slug matches
// nothing else.
func SamplePlanDetail() models.Trip {
	return models.Trip{
		ID:          "taipei-foodie",
		UserID:      "demo-user",
		Title:       "Taipei food tour",
		Destination: "Taipei, Taiwan",
		StartDate:   "2025-05-12",
		EndDate:     "2025-05-16",
		Summary:     "Night markets and day trips",
		Status:      models.TripStatusScheduled,
		Timezone:    "Asia/Taipei",
		PublicSlug:  "taipei-foodie",
		Highlights:  []string{"Yongkang street dim sum", "Jiufen & Shifen day trip", "Longshan Temple at night"},
		Notes: []string{
			"Day 1: Longshan Temple, then dim sum on Yongkang street",
			"Day 2: Jiufen & Shifen day trip",
			"Day 3: Palace Museum, Michelin night market tour",
		},
		Budget: &models.Budget{
			LodgingPerNight: 110000,
			DailyFood:       65000,
			Transport:       50000,
			Etc:             30000,
		},
		Days: []models.Day{
			{
				ID:     "taipei-day1",
				TripID: "taipei-foodie",
				Date:   "2025-05-12",
				Title:  "Longshan Temple & Yongkang",
				Blocks: []models.Block{
					{
						ID: "tp-d1-b1", TripID: "taipei-foodie", DayID: "taipei-day1",
						StartTime: "09:00", EndTime: "10:30",
						Title: "Longshan Temple", Memo: "Prayers and photos",
						Category: models.CategoryMorning, Source: models.SourceUser,
						Lat: f(25.0375167), Lng: f(121.4995493),
					},
					{
						ID: "tp-d1-b2", TripID: "taipei-foodie", DayID: "taipei-day1",
						StartTime: "12:30", EndTime: "13:30",
						Title: "Din Tai Fung, Yongkang", Memo: "Expect a queue for xiaolongbao",
						Category: models.CategoryLunch, Source: models.SourceUser,
						Lat: f(25.033986), Lng: f(121.529411),
					},
				},
			},
			{
				ID:     "taipei-day2",
				TripID: "taipei-foodie",
				Date:   "2025-05-13",
				Title:  "Jiufen & Shifen",
				Blocks: []models.Block{
					{
						ID: "tp-d2-b1", TripID: "taipei-foodie", DayID: "taipei-day2",
						StartTime: "10:00", EndTime: "12:00",
						Title: "Jiufen Old Street", Memo: "Bus from Taipei",
						Category: models.CategoryMorning, Source: models.SourceUser,
						Lat: f(25.10987), Lng: f(121.845),
					},
					{
						ID: "tp-d2-b2", TripID: "taipei-foodie", DayID: "taipei-day2",
						StartTime: "15:00", EndTime: "16:00",
						Title: "Shifen sky lanterns", Memo: "Plan B if it rains",
						Category: models.CategoryAfternoon, Source: models.SourceUser,
						Lat: f(25.04986), Lng: f(121.77579),
					},
				},
			},
		},
	}
}
