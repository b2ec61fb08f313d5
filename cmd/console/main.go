package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rakhadenta/restaurant-booking/booking"
	"github.com/rakhadenta/restaurant-booking/models"
)

// Console front-end: a numbered menu over stdin driving the Restaurant
// operations directly, without any transport in between.

func main() {
	rest := booking.NewRestaurant("Ocean Breeze", "123 Harbor Road")
	booking.SeedDemo(rest)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		choice, ok := readInt(scanner, "> ")
		if !ok {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			listTables(rest)
		case 2:
			listAvailable(rest, scanner)
		case 3:
			bookReservation(rest, scanner)
		case 4:
			assignTable(rest, scanner)
		case 5:
			transition(rest, scanner, "check in", rest.CheckInReservation)
		case 6:
			transition(rest, scanner, "complete", rest.CompleteReservation)
		case 7:
			transition(rest, scanner, "cancel", rest.CancelReservation)
		case 8:
			createOrder(rest, scanner)
		case 9:
			addOrderItem(rest, scanner)
		case 10:
			closeOrder(rest, scanner)
		case 11:
			fmt.Println(rest.Summary())
		case 12:
			report := rest.GenerateDailyReport("Daily Report")
			fmt.Println(report.Content)
		default:
			fmt.Println("Unknown option")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("=== Restaurant Booking ===")
	fmt.Println(" 1. List tables")
	fmt.Println(" 2. Available tables for party size")
	fmt.Println(" 3. Book reservation")
	fmt.Println(" 4. Assign table to reservation")
	fmt.Println(" 5. Check in reservation")
	fmt.Println(" 6. Complete reservation")
	fmt.Println(" 7. Cancel reservation")
	fmt.Println(" 8. Create order for table")
	fmt.Println(" 9. Add item to order")
	fmt.Println("10. Close order")
	fmt.Println("11. Booking sheet summary")
	fmt.Println("12. Daily report")
	fmt.Println(" 0. Exit")
}

func readLine(scanner *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func readInt(scanner *bufio.Scanner, prompt string) (int, bool) {
	for {
		line, ok := readLine(scanner, prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Please enter a number")
			continue
		}
		return n, true
	}
}

func listTables(rest *booking.Restaurant) {
	for _, table := range rest.Tables() {
		fmt.Printf("Table %d | %d seats | %s", table.ID, table.Seats, table.Status)
		if table.Label != "" {
			fmt.Printf(" | %s", table.Label)
		}
		fmt.Println()
	}
}

func listAvailable(rest *booking.Restaurant, scanner *bufio.Scanner) {
	partySize, ok := readInt(scanner, "Party size: ")
	if !ok {
		return
	}
	tables := rest.AvailableTables(partySize)
	if len(tables) == 0 {
		fmt.Println("No tables available")
		return
	}
	for _, table := range tables {
		fmt.Printf("Table %d | %d seats\n", table.ID, table.Seats)
	}
}

func bookReservation(rest *booking.Restaurant, scanner *bufio.Scanner) {
	name, ok := readLine(scanner, "Customer name: ")
	if !ok {
		return
	}
	phone, ok := readLine(scanner, "Phone: ")
	if !ok {
		return
	}
	when, ok := readLine(scanner, "Date and time (2024-08-08T19:00): ")
	if !ok {
		return
	}
	dateTime, err := booking.ParseDateTime(when)
	if err != nil {
		fmt.Println(err)
		return
	}
	partySize, ok := readInt(scanner, "Party size: ")
	if !ok {
		return
	}
	notes, ok := readLine(scanner, "Notes: ")
	if !ok {
		return
	}

	customer := models.Customer{Name: name, Phone: phone}
	reservation := rest.BookReservation(customer, dateTime, partySize, notes)
	if table := reservation.Table(); table != nil {
		fmt.Printf("Reservation #%d booked at table %d\n", reservation.ID, table.ID)
	} else {
		fmt.Printf("Reservation #%d created, no table available yet\n", reservation.ID)
	}
}

func assignTable(rest *booking.Restaurant, scanner *bufio.Scanner) {
	reservationID, ok := readInt(scanner, "Reservation id: ")
	if !ok {
		return
	}
	tableID, ok := readInt(scanner, "Table id: ")
	if !ok {
		return
	}
	if ok, reason := rest.AssignTableToReservation(reservationID, tableID); !ok {
		fmt.Println("Assignment failed:", reason)
		return
	}
	fmt.Printf("Reservation #%d assigned to table %d\n", reservationID, tableID)
}

func transition(rest *booking.Restaurant, scanner *bufio.Scanner, verb string, apply func(int) bool) {
	reservationID, ok := readInt(scanner, "Reservation id: ")
	if !ok {
		return
	}
	if !apply(reservationID) {
		fmt.Printf("Reservation %d not found\n", reservationID)
		return
	}
	fmt.Printf("Reservation #%d: %s done\n", reservationID, verb)
}

func createOrder(rest *booking.Restaurant, scanner *bufio.Scanner) {
	tableID, ok := readInt(scanner, "Table id: ")
	if !ok {
		return
	}
	if _, ok := rest.Table(tableID); !ok {
		fmt.Printf("Table %d not found\n", tableID)
		return
	}
	if open, ok := rest.FindOpenOrderByTable(tableID); ok {
		fmt.Printf("Table %d already has open order %d\n", tableID, open.ID)
		return
	}
	order := rest.CreateOrder(tableID)
	fmt.Printf("Order %d opened for table %d\n", order.ID, tableID)
}

func addOrderItem(rest *booking.Restaurant, scanner *bufio.Scanner) {
	orderID, ok := readInt(scanner, "Order id: ")
	if !ok {
		return
	}
	fmt.Println("Menu:")
	for _, item := range rest.Menu() {
		fmt.Printf("  %s (%.2f) - %s\n", item.Name, item.Price, item.Category)
	}
	name, ok := readLine(scanner, "Item name: ")
	if !ok {
		return
	}
	quantity, ok := readInt(scanner, "Quantity: ")
	if !ok {
		return
	}
	if ok, reason := rest.AddOrderItem(orderID, name, quantity); !ok {
		fmt.Println(reason)
		return
	}
	if order, ok := rest.Order(orderID); ok {
		fmt.Print(order.Summary())
	}
}

func closeOrder(rest *booking.Restaurant, scanner *bufio.Scanner) {
	orderID, ok := readInt(scanner, "Order id: ")
	if !ok {
		return
	}
	if !rest.CloseOrder(orderID) {
		fmt.Printf("Order %d not found\n", orderID)
		return
	}
	fmt.Printf("Order %d closed\n", orderID)
}
