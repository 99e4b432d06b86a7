package main

import (
	"fmt"
)

// printAdded reports a freshly assigned identifier.
func printAdded(entity string, id any) {
	fmt.Printf("Added %s no. %v.\n", entity, id)
}

// printRecords prints each record on its own block followed by a
// result count.
func printRecords(res any, format func(map[string]any) string) {
	records, ok := res.([]map[string]any)
	if !ok {
		fmt.Printf("%v\n", res)
		return
	}
	fmt.Println("---- RESULTS ----")
	for _, r := range records {
		fmt.Println(format(r))
		fmt.Println()
	}
	fmt.Printf("(number of results: %d)\n", len(records))
}

func formatEvent(r map[string]any) string {
	s := fmt.Sprintf("no. %v name: %v; starts %v %v; ends %v %v;\ndescription: %v",
		r["id"], r["name"],
		r["start_date"], r["start_time"],
		r["end_date"], r["end_time"],
		r["description"])
	if r["venue_name"] != nil {
		s += fmt.Sprintf("\nvenue: %v", r["venue_name"])
	}
	return s
}

func formatVenue(r map[string]any) string {
	address := "none"
	if r["address"] != nil {
		address = fmt.Sprintf("%v", r["address"])
	}
	return fmt.Sprintf("no. %v name: %v; address: %v", r["id"], r["name"], address)
}

func formatPerson(r map[string]any) string {
	return fmt.Sprintf("no. %v name: %v; email: %v", r["id"], r["name"], r["email"])
}
