// Package blog serves the static blog/master-class content. Read-only,
// no persistence.
package blog

import (
	"strings"
	"time"
)

// Post is one blog article
type Post struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Image    string    `json:"image"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
}

// All returns every post, newest first as authored
func All() []Post {
	return posts
}

// Recent returns up to n posts for the home page preview
func Recent(n int) []Post {
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n]
}

// ByID returns the post with the given id, or false when absent
func ByID(id int) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Filter keeps posts matching the search query (title or content
// substring, case-insensitive), category and tag. Empty arguments
// match everything.
func Filter(query, category, tag string) []Post {
	q := strings.ToLower(query)
	out := []Post{}
	for _, p := range posts {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasTag(p Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var posts = []Post{
	{
		ID:       1,
		Title:    "Акварель для начинающих: первые шаги",
		Excerpt:  "С чего начать знакомство с акварелью: выбор красок, бумаги и кистей.",
		Content:  "Акварель — одна из самых доступных техник живописи. Для старта достаточно набора из 12 цветов, пары кистей из колонка и плотной бумаги от 200 г/м². В этой статье разберем базовые приемы: заливку, лессировку и работу по-мокрому.",
		Image:    "/static/blog/1.webp",
		Date:     time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC),
		Category: "Рисование",
		Tags:     []string{"акварель", "для начинающих"},
	},
	{
		ID:       2,
		Title:    "Мастер-класс: брошь из полимерной глины",
		Excerpt:  "Пошаговый урок по лепке миниатюрной броши-цветка из запекаемой глины.",
		Content:  "Полимерная глина позволяет создавать украшения без специального оборудования. Понадобится глина двух цветов, лезвие, зубочистка и духовка. Лепим лепестки, собираем цветок, запекаем при 110 °C и крепим основу для броши.",
		Image:    "/static/blog/2.webp",
		Date:     time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC),
		Category: "Лепка",
		Tags:     []string{"полимерная глина", "мастер-класс", "украшения"},
	},
	{
		ID:       3,
		Title:    "Как выбрать пряжу для первого свитера",
		Excerpt:  "Разбираемся в составах и метраже, чтобы свитер не разочаровал.",
		Content:  "Для первого свитера лучше взять пряжу средней толщины с метражом 200-250 м на 100 г. Меринос мягкий и не колется, смесовые составы проще в уходе. Считаем расход: на размер M уходит 500-600 г.",
		Image:    "/static/blog/3.webp",
		Date:     time.Date(2024, 9, 18, 0, 0, 0, 0, time.UTC),
		Category: "Вязание",
		Tags:     []string{"пряжа", "для начинающих"},
	},
	{
		ID:       4,
		Title:    "Скрапбукинг: альбом в винтажном стиле",
		Excerpt:  "Собираем семейный альбом из крафтовой бумаги, кружева и высечек.",
		Content:  "Винтажный стиль держится на приглушенной палитре и фактурных материалах. Основой альбома послужит переплетный картон, страницы — крафтовая и дизайнерская бумага. Состариваем края дистресс-чернилами и добавляем кружево.",
		Image:    "/static/blog/4.webp",
		Date:     time.Date(2024, 8, 25, 0, 0, 0, 0, time.UTC),
		Category: "Скрапбукинг",
		Tags:     []string{"скрапбукинг", "мастер-класс"},
	},
}
