package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-artist-guesser/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	unknown      = "Unknown"
	maxNameWidth = 40
)

func badge(value string, match models.FieldMatch) string {
	switch match {
	case models.MatchExact:
		return badgeMatchStyle.Render(value)
	case models.MatchPartial:
		return badgePartialStyle.Render(value)
	case models.MatchHigher:
		return badgeHintStyle.Render(value + " ↓")
	case models.MatchLower:
		return badgeHintStyle.Render(value + " ↑")
	default:
		return badgeNoMatchStyle.Render(value)
	}
}

func fieldRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderGuessCard(card models.GuessCard) string {
	header := fmt.Sprintf("%s  %d/%d",
		titleStyle.Render(fitText(valueOr(card.Artist.Name, unknown), maxNameWidth)), card.GuessNumber, card.MaxGuesses)

	rows := []string{
		header,
		fieldRow("Gender", badge(valueOr(card.Artist.Gender, unknown), card.Fields.Gender)),
		fieldRow("Genre", badge(valueOr(card.Artist.Tag, unknown), card.Fields.Genre)),
		fieldRow("Country", badge(valueOr(card.Artist.AreaName(), unknown), card.Fields.Area)),
		fieldRow("Popularity", badge(intOr(card.Artist.Popularity, unknown), card.Fields.Popularity)),
	}

	return cardStyle.Render(strings.Join(rows, "\n"))
}

func renderOutcomeCard(card models.OutcomeCard) string {
	title, message, style := "✗ Game Over", "No guesses left.", outcomeLostStyle
	if card.Won {
		title, message, style = "✓ You Got It!", "Nice job, you guessed the artist!", outcomeWonStyle
	}

	rows := []string{
		titleStyle.Render(title),
		message,
		"",
		"Correct Artist: " + titleStyle.Render(valueOr(card.Answer.Name, unknown)),
		fieldRow("Genre", valueOr(card.Answer.Genre, unknown)),
		fieldRow("Country", valueOr(card.Answer.Area, unknown)),
		fieldRow("Popularity", intOr(card.Answer.Popularity, "?")),
		"",
		helpStyle.Render(fmt.Sprintf("%d guesses in %s", card.Guesses, card.Elapsed.Round(time.Second))),
	}

	return style.Render(strings.Join(rows, "\n"))
}

func renderSearchCard(card models.SearchCard, selected bool) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fitText(valueOr(card.Artist.Name, "Unknown artist"), maxNameWidth)),
		" ",
		pillStyle.Render(valueOr(card.Artist.Tag, "No tag")),
	)

	rows := []string{
		header,
		helpStyle.Render(valueOr(card.Artist.AreaName(), "Unknown area") + " • " + valueOr(card.Artist.Type, "Artist")),
		fieldRow("Spotify", intOr(card.Artist.Popularity, "?")),
		fieldRow("Gender", valueOr(card.Artist.Gender, unknown)),
		fieldRow("Begin", valueOr(card.Artist.Begin(), unknown)),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func renderButton(label, busyLabel string, busy bool) string {
	if busy {
		return buttonBusyStyle.Render(busyLabel)
	}
	return buttonStyle.Render(label)
}
