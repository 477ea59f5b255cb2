package seeders

import (
	"time"

	"github.com/aarondl/null/v8"

	"staff-registry/internal/entities"
)

type demoPerson struct {
	User     entities.User
	Employee *entities.Employee
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// demoStaff демо-набор: двое сотрудников и один пользователь без карточки сотрудника.
var demoStaff = []demoPerson{
	{
		User: entities.User{
			TelegramID:  100001,
			Username:    null.StringFrom("ann_lee"),
			FirstName:   "Ann",
			LastName:    null.StringFrom("Lee"),
			PhoneNumber: null.StringFrom("+79990001122"),
		},
		Employee: &entities.Employee{
			TelegramID:       100001,
			ZupID:            "ZUP-0001",
			Login:            "a.lee",
			FirstName:        "Ann",
			LastName:         "Lee",
			FullName:         "Lee Ann",
			Age:              30,
			DateOfBirth:      date(1994, time.May, 1),
			Gender:           entities.GenderFemale,
			Position:         "Backend Engineer",
			Department:       "IT",
			Organisation:     "ACME",
			FullOrgStructure: "ACME / IT / Backend",
			DateOfStart:      date(2020, time.January, 10),
			Phone:            "+79990001122",
			Email:            "ann.lee@example.com",
			IsWorking:        true,
		},
	},
	{
		User: entities.User{
			TelegramID: 100002,
			Username:   null.StringFrom("ivan_p"),
			FirstName:  "Ivan",
			LastName:   null.StringFrom("Petrov"),
		},
		Employee: &entities.Employee{
			TelegramID:       100002,
			ZupID:            "ZUP-0002",
			Login:            "i.petrov",
			FirstName:        "Ivan",
			LastName:         "Petrov",
			MiddleName:       null.StringFrom("Sergeevich"),
			FullName:         "Petrov Ivan Sergeevich",
			Age:              41,
			DateOfBirth:      date(1983, time.March, 17),
			Gender:           entities.GenderMale,
			Position:         "Accountant",
			Department:       "Finance",
			Organisation:     "ACME",
			FullOrgStructure: "ACME / Finance",
			DateOfStart:      date(2015, time.September, 1),
			DateOfEnd:        null.TimeFrom(date(2024, time.June, 30)),
			Phone:            "+79990003344",
			Email:            "ivan.petrov@example.com",
			IsWorking:        false,
		},
	},
	{
		User: entities.User{
			TelegramID: 100003,
			FirstName:  "Guest",
		},
	},
}
