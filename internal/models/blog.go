package models

import "github.com/TechXTT/blog/pkg/orm"

// Blog maps to the `blogs` table.
type Blog struct {
	ID        string  `db:"id,omitempty"         json:"id"`
	UserID    string  `db:"user_id"              json:"user_id"`
	UserName  string  `db:"user_name"            json:"user_name"`
	UserImage string  `db:"user_image"           json:"user_image"`
	Name      string  `db:"name"                 json:"name"`
	Summary   string  `db:"summary"              json:"summary"`
	Content   string  `db:"content"              json:"content"`
	CreatedAt float64 `db:"created_at,omitempty" json:"created_at"`
}

var BlogSchema = orm.MustSchema("blogs",
	orm.StringField("id", orm.PrimaryKey(), orm.Default(NextID), orm.DDL("varchar(50)")),
	orm.StringField("user_id", orm.DDL("varchar(50)")),
	orm.StringField("user_name", orm.DDL("varchar(50)")),
	orm.StringField("user_image", orm.DDL("varchar(500)")),
	orm.StringField("name", orm.DDL("varchar(50)")),
	orm.StringField("summary", orm.DDL("varchar(200)")),
	orm.TextField("content"),
	orm.FloatField("created_at", orm.Default(Now)),
)

func NewBlogs(db *orm.DB) *orm.Model[Blog] {
	return orm.NewModel[Blog](db, BlogSchema)
}

// Comment maps to the `comments` table.
type Comment struct {
	ID        string  `db:"id,omitempty"         json:"id"`
	BlogID    string  `db:"blog_id"              json:"blog_id"`
	UserID    string  `db:"user_id"              json:"user_id"`
	UserName  string  `db:"user_name"            json:"user_name"`
	UserImage string  `db:"user_image"           json:"user_image"`
	Content   string  `db:"content"              json:"content"`
	CreatedAt float64 `db:"created_at,omitempty" json:"created_at"`
}

var CommentSchema = orm.MustSchema("comments",
	orm.StringField("id", orm.PrimaryKey(), orm.Default(NextID), orm.DDL("varchar(50)")),
	orm.StringField("blog_id", orm.DDL("varchar(50)")),
	orm.StringField("user_id", orm.DDL("varchar(50)")),
	orm.StringField("user_name", orm.DDL("varchar(50)")),
	orm.StringField("user_image", orm.DDL("varchar(500)")),
	orm.TextField("content"),
	orm.FloatField("created_at", orm.Default(Now)),
)

func NewComments(db *orm.DB) *orm.Model[Comment] {
	return orm.NewModel[Comment](db, CommentSchema)
}

// Schemas lists every record type's schema.
func Schemas() []*orm.Schema {
	return []*orm.Schema{UserSchema, BlogSchema, CommentSchema}
}
