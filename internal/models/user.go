package models

import (
	"context"
	"strings"

	"github.com/TechXTT/blog/pkg/orm"
)

// User maps to the `users` table.
type User struct {
	ID        string  `db:"id,omitempty"         json:"id"`
	Email     string  `db:"email"                json:"email"`
	Passwd    string  `db:"passwd"               json:"-"`
	Admin     bool    `db:"admin"                json:"admin"`
	Name      string  `db:"name"                 json:"name"`
	Image     string  `db:"image"                json:"image"`
	CreatedAt float64 `db:"created_at,omitempty" json:"created_at"`
}

var UserSchema = orm.MustSchema("users",
	orm.StringField("id", orm.PrimaryKey(), orm.Default(NextID), orm.DDL("varchar(50)")),
	orm.StringField("email", orm.DDL("varchar(50)")),
	orm.StringField("passwd", orm.DDL("varchar(50)")),
	orm.BooleanField("admin"),
	orm.StringField("name", orm.DDL("varchar(50)")),
	orm.StringField("image", orm.DDL("varchar(500)")),
	orm.FloatField("created_at", orm.Default(Now)),
)

// BeforeSave normalises the e-mail address.
func (u *User) BeforeSave(_ context.Context) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

func NewUsers(db *orm.DB) *orm.Model[User] {
	return orm.NewModel[User](db, UserSchema)
}
