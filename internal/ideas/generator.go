package ideas

import (
	"fmt"
	"math/rand"
	"time"

	"ideas-listing/internal/models"
)

var baseTitles = []string{
	"Kenali Tingkatan Influencers berdasarkan Jumlah Followers",
	"Jangan Asal Pilih Influencer, Berikut Cara Menyusun Strategi Influencer Marketing",
	"Tips Memilih Influencer yang Tepat untuk Brand Anda",
	"Strategi Content Marketing yang Efektif di Era Digital",
	"Mengoptimalkan ROI melalui Influencer Marketing",
	"Tren Social Media Marketing 2024",
	"Cara Membangun Brand Awareness melalui Digital Marketing",
	"Pentingnya Engagement Rate dalam Influencer Marketing",
}

const maxAgeDays = 90

// Generate builds count mock posts with ids 1..count, a random base title and a
// publication date within the last 90 days of now. Titles past the eighth post
// carry their id so repeated titles stay distinguishable.
func Generate(count int, now time.Time, rng *rand.Rand) []models.Post {
	if count < 0 {
		count = 0
	}
	posts := make([]models.Post, 0, count)
	for i := 1; i <= count; i++ {
		title := baseTitles[rng.Intn(len(baseTitles))]
		if i > len(baseTitles) {
			title = fmt.Sprintf("%s (%d)", title, i)
		}
		daysAgo := rng.Intn(maxAgeDays)

		posts = append(posts, models.Post{
			ID:          i,
			Title:       title,
			PublishedAt: now.AddDate(0, 0, -daysAgo).UTC(),
			SmallImage:  fmt.Sprintf("https://picsum.photos/300/200?random=%d", i),
			MediumImage: fmt.Sprintf("https://picsum.photos/600/400?random=%d", i),
			Position:    i - 1,
		})
	}
	return posts
}

// NewRand returns a seeded source; seed 0 means time based.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
