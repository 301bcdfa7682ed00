package models

// Wire records as the CUSP backend returns them. The backend owns every id;
// nothing here is authoritative past the last fetch.

type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type User struct {
	ID           int64         `json:"id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Location     string        `json:"location"`
	Address      string        `json:"address"`
	Company      string        `json:"company"`
	JobTitle     string        `json:"job_title"`
	Headline     string        `json:"headline"`
	ProfilePhoto string        `json:"profile_photo"`
	Language     string        `json:"language"`
	Timezone     string        `json:"timezone"`
	Tags         []string      `json:"tags"`
	CreatedPosts []Post        `json:"created_posts"`
	UserComments []UserComment `json:"user_comments"`
}

type UserComment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type PostTag struct {
	TagTitle string `json:"tag_title"`
}

type PostUpload struct {
	Image string `json:"image"`
	Video string `json:"video"`
}

type Post struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Tags         []PostTag    `json:"tags"`
	Uploads      []PostUpload `json:"uploads"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	ProfilePhoto string       `json:"profile_photo"`
	JobTitle     string       `json:"job_title"`
	Location     string       `json:"location"`
	CreatedAt    string       `json:"created_at"`
}

type Event struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	LocationURL string   `json:"location_url"`
	EventLink   string   `json:"event_link"`
	EventTags   []string `json:"event_tags"`
	EventImage  string   `json:"event_image"`
}

type Directory struct {
	ID          int64  `json:"id"`
	PlaceName   string `json:"place_name"`
	Location    string `json:"location"`
	LocationURL string `json:"location_url"`
	PersonName  string `json:"p_name"`
	PersonEmail string `json:"p_email"`
	PersonPhoto string `json:"p_photo"`
	Status      string `json:"status"`
}

type Tool struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImgURL      string `json:"img_url"`
}

type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type Lesson struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
}

type Topic struct {
	ID       int64  `json:"id"`
	LessonID int64  `json:"lesson_id"`
	Title    string `json:"title"`
	PPTFile  string `json:"ppt_file"`
}

// Report status is one-directional: "pending" until an action is recorded.
const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "Action Taken"

	ReportActionDeleted = "Deleted"
	ReportActionIgnored = "Ignored (Fake Report)"
)

type Report struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	PostID    int64   `json:"post_id"`
	Reason    string  `json:"reason"`
	Status    string  `json:"r_status"`
	Action    *string `json:"action"`
	CreatedAt string  `json:"created_at"`
}
