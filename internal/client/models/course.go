package models

// Image is a course cover image reference.
type Image struct {
	Link string `json:"link"`
}

// Lesson is a single content unit of a course. Video carries the embed
// reference; the access policy may replace it with a sentinel before the
// lesson is handed to the presentation layer.
type Lesson struct {
	Title string `json:"title"`
	Video string `json:"video"`
}

// Course is a catalog entry. Only ID and Price participate in cart and
// checkout arithmetic; Content is consulted by the access policy.
type Course struct {
	ID               int      `json:"id"`
	Image            Image    `json:"image"`
	Title            string   `json:"title"`
	Price            float64  `json:"price"`
	Description      string   `json:"description"`
	StudentsEnrolled int      `json:"studentsEnrolled"`
	Tags             []string `json:"tags"`
	Content          []Lesson `json:"content"`
}
