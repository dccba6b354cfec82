package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/prompt"
	"github.com/pkordes/vacation-planner/internal/service"
)

// catalogLister is the part of the catalog the console needs to draw menus.
type catalogLister interface {
	Destinations() []*domain.Destination
	Hotels(destination string) ([]domain.Hotel, error)
}

// planner drives one console planning session.
type planner struct {
	catalog catalogLister
	service *service.PlannerService
	prompt  *prompt.Prompter
	out     io.Writer
}

// run asks every question in order, plans the trip and prints the user's trips.
func (p *planner) run(ctx context.Context) error {
	p.prompt.Printf("Welcome to the Enhanced Vacation Planner!\n")

	name, err := p.prompt.Line("Enter your name: ")
	if err != nil {
		return err
	}
	user := domain.NewUser(name)

	dests := p.catalog.Destinations()
	p.prompt.Printf("\nAvailable Destinations:\n")
	for i, d := range dests {
		p.prompt.Printf("%d. %s\n", i+1, d.Details())
	}
	destIdx, err := p.prompt.Choice(fmt.Sprintf("Choose a destination (1-%d): ", len(dests)), len(dests))
	if err != nil {
		return err
	}
	dest := dests[destIdx]

	start, err := p.prompt.Date("Enter the start date of your trip (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	days, err := p.prompt.Days("How many days do you want to stay? ")
	if err != nil {
		return err
	}
	budget, err := p.prompt.Budget("Enter your budget: $")
	if err != nil {
		return err
	}

	req := domain.TripRequest{
		Destination: dest.Name,
		StartDate:   start,
		Days:        days,
		Budget:      budget,
		HotelIndex:  domain.NoHotel,
	}

	hotels, err := p.catalog.Hotels(dest.Name)
	if err != nil {
		return fmt.Errorf("planner.run: %w", err)
	}
	if len(hotels) > 0 {
		p.prompt.Printf("\nSuggested Hotels:\n")
		for i, h := range hotels {
			p.prompt.Printf("%d. %s\n", i+1, h.Details())
		}
		req.HotelIndex, err = p.prompt.Choice(fmt.Sprintf("Choose a hotel (1-%d): ", len(hotels)), len(hotels))
		if err != nil {
			return err
		}
	}

	activities := dest.ListActivities()
	p.prompt.Printf("\nAvailable Activities:\n")
	for i, a := range activities {
		p.prompt.Printf("%d. %s\n", i+1, a)
	}
	req.ActivityIndexes, err = p.prompt.Choices("Select activities by number : ", len(activities))
	if err != nil {
		return err
	}

	if _, err := p.service.Plan(ctx, user, req); err != nil {
		return err
	}

	p.prompt.Printf("\nYour Trip Details:\n")
	return user.ViewTrips(p.out)
}
