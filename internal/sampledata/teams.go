package sampledata

import "github.com/okian/pbpsplit/internal/domain/model"

// League is the 32-team table in abbreviation order.
var League = []model.Team{
	{Abbr: "ARI", Name: "Arizona Cardinals", Nick: "Cardinals", Conference: "NFC", Division: "NFC West"},
	{Abbr: "ATL", Name: "Atlanta Falcons", Nick: "Falcons", Conference: "NFC", Division: "NFC South"},
	{Abbr: "BAL", Name: "Baltimore Ravens", Nick: "Ravens", Conference: "AFC", Division: "AFC North"},
	{Abbr: "BUF", Name: "Buffalo Bills", Nick: "Bills", Conference: "AFC", Division: "AFC East"},
	{Abbr: "CAR", Name: "Carolina Panthers", Nick: "Panthers", Conference: "NFC", Division: "NFC South"},
	{Abbr: "CHI", Name: "Chicago Bears", Nick: "Bears", Conference: "NFC", Division: "NFC North"},
	{Abbr: "CIN", Name: "Cincinnati Bengals", Nick: "Bengals", Conference: "AFC", Division: "AFC North"},
	{Abbr: "CLE", Name: "Cleveland Browns", Nick: "Browns", Conference: "AFC", Division: "AFC North"},
	{Abbr: "DAL", Name: "Dallas Cowboys", Nick: "Cowboys", Conference: "NFC", Division: "NFC East"},
	{Abbr: "DEN", Name: "Denver Broncos", Nick: "Broncos", Conference: "AFC", Division: "AFC West"},
	{Abbr: "DET", Name: "Detroit Lions", Nick: "Lions", Conference: "NFC", Division: "NFC North"},
	{Abbr: "GB", Name: "Green Bay Packers", Nick: "Packers", Conference: "NFC", Division: "NFC North"},
	{Abbr: "HOU", Name: "Houston Texans", Nick: "Texans", Conference: "AFC", Division: "AFC South"},
	{Abbr: "IND", Name: "Indianapolis Colts", Nick: "Colts", Conference: "AFC", Division: "AFC South"},
	{Abbr: "JAX", Name: "Jacksonville Jaguars", Nick: "Jaguars", Conference: "AFC", Division: "AFC South"},
	{Abbr: "KC", Name: "Kansas City Chiefs", Nick: "Chiefs", Conference: "AFC", Division: "AFC West"},
	{Abbr: "LA", Name: "Los Angeles Rams", Nick: "Rams", Conference: "NFC", Division: "NFC West"},
	{Abbr: "LAC", Name: "Los Angeles Chargers", Nick: "Chargers", Conference: "AFC", Division: "AFC West"},
	{Abbr: "LV", Name: "Las Vegas Raiders", Nick: "Raiders", Conference: "AFC", Division: "AFC West"},
	{Abbr: "MIA", Name: "Miami Dolphins", Nick: "Dolphins", Conference: "AFC", Division: "AFC East"},
	{Abbr: "MIN", Name: "Minnesota Vikings", Nick: "Vikings", Conference: "NFC", Division: "NFC North"},
	{Abbr: "NE", Name: "New England Patriots", Nick: "Patriots", Conference: "AFC", Division: "AFC East"},
	{Abbr: "NO", Name: "New Orleans Saints", Nick: "Saints", Conference: "NFC", Division: "NFC South"},
	{Abbr: "NYG", Name: "New York Giants", Nick: "Giants", Conference: "NFC", Division: "NFC East"},
	{Abbr: "NYJ", Name: "New York Jets", Nick: "Jets", Conference: "AFC", Division: "AFC East"},
	{Abbr: "PHI", Name: "Philadelphia Eagles", Nick: "Eagles", Conference: "NFC", Division: "NFC East"},
	{Abbr: "PIT", Name: "Pittsburgh Steelers", Nick: "Steelers", Conference: "AFC", Division: "AFC North"},
	{Abbr: "SEA", Name: "Seattle Seahawks", Nick: "Seahawks", Conference: "NFC", Division: "NFC West"},
	{Abbr: "SF", Name: "San Francisco 49ers", Nick: "49ers", Conference: "NFC", Division: "NFC West"},
	{Abbr: "TB", Name: "Tampa Bay Buccaneers", Nick: "Buccaneers", Conference: "NFC", Division: "NFC South"},
	{Abbr: "TEN", Name: "Tennessee Titans", Nick: "Titans", Conference: "AFC", Division: "AFC South"},
	{Abbr: "WAS", Name: "Washington Commanders", Nick: "Commanders", Conference: "NFC", Division: "NFC East"},
}
