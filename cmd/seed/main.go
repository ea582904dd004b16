package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/database"
	"backoffice/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "backoffice.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// wipe in FK-safe order
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"booking_services", "bookings", "hotel_services", "rooms", "room_types", "customers",
		"loans", "book_authors", "books", "authors", "categories",
		"sessions", "class_students", "training_classes", "students", "teachers", "subjects",
		"users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@backoffice.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	db.Create(&admin)

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "staff@backoffice.local",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Front Desk",
	}
	db.Create(&staff)
	log.Println("Admin created: admin@backoffice.local / admin123")

	// ================== HOTEL ==================
	log.Println("Seeding hotel domain...")
	standard := domain.RoomType{Name: "Standard", Code: "STD"}
	deluxe := domain.RoomType{Name: "Deluxe", Code: "DLX"}
	db.Create(&standard)
	db.Create(&deluxe)

	rooms := []domain.Room{
		{Number: "101", Floor: 1, PricePerNight: 500_000, Status: domain.RoomAvailable, TypeID: &standard.ID},
		{Number: "102", Floor: 1, PricePerNight: 500_000, Status: domain.RoomOccupied, TypeID: &standard.ID},
		{Number: "201", Floor: 2, PricePerNight: 900_000, Status: domain.RoomAvailable, TypeID: &deluxe.ID},
		{Number: "202", Floor: 2, PricePerNight: 900_000, Status: domain.RoomMaintenance, TypeID: &deluxe.ID},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	services := []domain.HotelService{
		{Name: "Breakfast", Price: 80_000},
		{Name: "Laundry", Price: 50_000},
		{Name: "Airport pickup", Price: 200_000},
	}
	for i := range services {
		db.Create(&services[i])
	}

	customer := domain.Customer{Name: "Nguyen Van A", IdentityCard: "079012345678", Phone: "+84 912 345 678"}
	db.Create(&customer)

	checkIn := date(2026, 9, 10)
	checkOut := date(2026, 9, 13)
	booking := domain.Booking{
		Code:        "BK-0001",
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		Status:      domain.BookingConfirmed,
		CustomerID:  customer.ID,
		RoomID:      rooms[0].ID,
		Duration:    3,
		TotalAmount: 3*500_000 + 80_000,
		Services:    services[:1],
	}
	db.Create(&booking)

	// ================== LIBRARY ==================
	log.Println("Seeding library domain...")
	novel := domain.Category{Name: "Novel"}
	science := domain.Category{Name: "Science"}
	db.Create(&novel)
	db.Create(&science)

	authors := []domain.Author{
		{Name: "Italo Calvino", Bio: "Italian novelist and short story writer."},
		{Name: "Carl Sagan", Bio: "Astronomer and science communicator."},
	}
	for i := range authors {
		db.Create(&authors[i])
	}

	purchased := date(2026, 1, 15)
	book := domain.Book{
		Name:             "Invisible Cities",
		ISBN:             "9780156453806",
		State:            domain.BookAvailable,
		Condition:        domain.ConditionGood,
		PurchasePrice:    120_000,
		PurchaseDate:     &purchased,
		CategoryID:       &novel.ID,
		Notes:            "Category: Novel - please shelve accordingly.",
		ShortDescription: "Invisible Cities - Italo Calvino (9780156453806)",
		Authors:          authors[:1],
	}
	db.Create(&book)

	borrow := date(2026, 8, 1)
	ret := date(2026, 8, 9)
	loan := domain.Loan{
		BorrowerName: "Tran Thi B",
		BorrowDate:   &borrow,
		ReturnDate:   &ret,
		IsReturned:   true,
		BookID:       book.ID,
		Duration:     8,
	}
	db.Create(&loan)
	db.Model(&book).Update("total_loans", 1)

	// ================== TRAINING ==================
	log.Println("Seeding training domain...")
	subjectCode := "GOP"
	subject := domain.Subject{Name: "Go Programming", Code: &subjectCode, Description: "Go programming from basics to services"}
	db.Create(&subject)

	teacher := domain.Teacher{Name: "Le Van C", Phone: "+84 987 654 321", Skills: "Go, distributed systems"}
	db.Create(&teacher)

	students := []domain.Student{
		{Name: "Student One", Email: "one@example.com", StudentNumber: "SV001"},
		{Name: "Student Two", Email: "two@example.com", StudentNumber: "SV002"},
		{Name: "Student Three", Email: "three@example.com", StudentNumber: "SV003"},
	}
	for i := range students {
		db.Create(&students[i])
	}

	start := date(2026, 10, 1)
	end := date(2026, 12, 20)
	class := domain.TrainingClass{
		Name:            "Go Backend Bootcamp",
		StartDate:       &start,
		EndDate:         &end,
		Status:          domain.ClassOpen,
		SubjectID:       subject.ID,
		TeacherID:       &teacher.ID,
		PricePerStudent: 1_000_000,
		TotalRevenue:    3_000_000,
		Students:        students,
	}
	db.Create(&class)

	sessionDate := date(2026, 10, 3)
	session := domain.Session{Name: "Introduction and tooling", Date: &sessionDate, DurationMinutes: 120, ClassID: class.ID}
	db.Create(&session)

	log.Println("Seed complete.")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
