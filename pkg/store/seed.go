package store

import (
	"time"

	"video-share/pkg/models"
)

// SeedVideos returns the catalog present at service start. Upload dates are
// relative to now so the seed never looks stale.
func SeedVideos(now time.Time) []models.Video {
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}
	return []models.Video{
		{
			ID:          "1",
			Title:       "Introduction to React Hooks",
			Description: "Learn the fundamentals of React Hooks in this comprehensive tutorial.",
			Thumbnail:   "https://images.pexels.com/photos/11035471/pexels-photo-11035471.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:    1260,
			Views:       15420,
			Likes:       1205,
			UploadDate:  day(8),
			UserID:      "1",
			Username:    "reactdev",
			UserAvatar:  "https://images.pexels.com/photos/1040881/pexels-photo-1040881.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"react", "javascript", "tutorial", "hooks"},
			Category:    "Education",
		},
		{
			ID:          "2",
			Title:       "Modern CSS Animations",
			Description: "Explore advanced CSS animation techniques and create stunning visual effects.",
			Thumbnail:   "https://images.pexels.com/photos/270404/pexels-photo-270404.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Duration:    980,
			Views:       8765,
			Likes:       892,
			UploadDate:  day(6),
			UserID:      "2",
			Username:    "cssmaster",
			UserAvatar:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"css", "animation", "web design", "frontend"},
			Category:    "Education",
		},
		{
			ID:          "3",
			Title:       "Beautiful Nature Documentary",
			Description: "Experience the wonders of nature in stunning 4K quality.",
			Thumbnail:   "https://images.pexels.com/photos/346529/pexels-photo-346529.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Duration:    2100,
			Views:       45230,
			Likes:       3890,
			UploadDate:  day(7),
			UserID:      "3",
			Username:    "naturelover",
			UserAvatar:  "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"nature", "documentary", "4k", "wildlife"},
			Category:    "Documentary",
		},
		{
			ID:          "4",
			Title:       "JavaScript ES6 Features",
			Description: "Deep dive into ES6 features including arrow functions and modules.",
			Thumbnail:   "https://images.pexels.com/photos/943096/pexels-photo-943096.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			Duration:    1540,
			Views:       12340,
			Likes:       1156,
			UploadDate:  day(5),
			UserID:      "1",
			Username:    "reactdev",
			UserAvatar:  "https://images.pexels.com/photos/1040881/pexels-photo-1040881.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"javascript", "es6", "tutorial", "programming"},
			Category:    "Education",
		},
		{
			ID:          "5",
			Title:       "AI Music Mix - Chill Beats",
			Description: "Lo-fi chill beats to relax and study to.",
			Thumbnail:   "https://images.pexels.com/photos/1647123/pexels-photo-1647123.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
			Duration:    3600,
			Views:       985421,
			Likes:       24012,
			UploadDate:  day(1),
			UserID:      "4",
			Username:    "aibeats",
			UserAvatar:  "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"music", "lofi", "chill", "mix"},
			Category:    "Music",
		},
		{
			ID:          "6",
			Title:       "Top 10 Gaming Moments",
			Description: "The craziest gaming moments compiled for you.",
			Thumbnail:   "https://images.pexels.com/photos/777263/pexels-photo-777263.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
			Duration:    1200,
			Views:       320120,
			Likes:       15423,
			UploadDate:  day(2),
			UserID:      "5",
			Username:    "gamehub",
			UserAvatar:  "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"gaming", "top10", "highlights"},
			Category:    "Gaming",
		},
		{
			ID:          "7",
			Title:       "Tech News Weekly",
			Description: "All the latest in technology this week.",
			Thumbnail:   "https://images.pexels.com/photos/3861964/pexels-photo-3861964.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
			Duration:    900,
			Views:       54210,
			Likes:       3801,
			UploadDate:  day(3),
			UserID:      "6",
			Username:    "technews",
			UserAvatar:  "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"technology", "news", "weekly"},
			Category:    "Technology",
		},
		{
			ID:          "8",
			Title:       "Football Skills Tutorial",
			Description: "Master the basics of football skills and drills.",
			Thumbnail:   "https://images.pexels.com/photos/47730/the-ball-stadion-football-the-pitch-47730.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4",
			Duration:    1100,
			Views:       84210,
			Likes:       5123,
			UploadDate:  day(4),
			UserID:      "7",
			Username:    "coachpro",
			UserAvatar:  "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"sports", "football", "skills"},
			Category:    "Sports",
		},
		{
			ID:          "9",
			Title:       "Comedy Night - Standup Highlights",
			Description: "Best moments from the comedy night.",
			Thumbnail:   "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Duration:    1800,
			Views:       201204,
			Likes:       12110,
			UploadDate:  day(5),
			UserID:      "8",
			Username:    "laughhub",
			UserAvatar:  "https://images.pexels.com/photos/211050/pexels-photo-211050.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Tags:        []string{"comedy", "standup", "entertainment"},
			Category:    "Entertainment",
		},
	}
}

// Seed loads the initial catalog into an empty store. Seed order is
// preserved: the first seed video lists first until uploads displace it.
func Seed(videos VideoStore, now time.Time) error {
	existing, err := videos.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	seed := SeedVideos(now)
	// Create prepends, so insert back to front.
	for i := len(seed) - 1; i >= 0; i-- {
		if err := videos.Create(seed[i]); err != nil {
			return err
		}
	}
	return nil
}
