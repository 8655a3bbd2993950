package parse

// teamAbbreviations maps common 2-4 letter broadcast codes to full team names.
// Checked before the lookup store so the usual suspects never need a query.
var teamAbbreviations = map[string]string{
	// NHL
	"ANA": "Anaheim Ducks",
	"BOS": "Boston Bruins",
	"BUF": "Buffalo Sabres",
	"CAR": "Carolina Hurricanes",
	"CBJ": "Columbus Blue Jackets",
	"CGY": "Calgary Flames",
	"COL": "Colorado Avalanche",
	"DAL": "Dallas Stars",
	"EDM": "Edmonton Oilers",
	"FLA": "Florida Panthers",
	"LAK": "Los Angeles Kings",
	"MTL": "Montreal Canadiens",
	"NSH": "Nashville Predators",
	"NYI": "New York Islanders",
	"NYR": "New York Rangers",
	"OTT": "Ottawa Senators",
	"PHI": "Philadelphia Flyers",
	"PIT": "Pittsburgh Penguins",
	"SJS": "San Jose Sharks",
	"STL": "St. Louis Blues",
	"TBL": "Tampa Bay Lightning",
	"TOR": "Toronto Maple Leafs",
	"VAN": "Vancouver Canucks",
	"VGK": "Vegas Golden Knights",
	"WPG": "Winnipeg Jets",
	"WSH": "Washington Capitals",

	// NFL
	"ARI": "Arizona Cardinals",
	"ATL": "Atlanta Falcons",
	"BAL": "Baltimore Ravens",
	"CIN": "Cincinnati Bengals",
	"CLE": "Cleveland Browns",
	"DEN": "Denver Broncos",
	"GB":  "Green Bay Packers",
	"HOU": "Houston Texans",
	"IND": "Indianapolis Colts",
	"JAX": "Jacksonville Jaguars",
	"KC":  "Kansas City Chiefs",
	"LAC": "Los Angeles Chargers",
	"LAR": "Los Angeles Rams",
	"LV":  "Las Vegas Raiders",
	"NE":  "New England Patriots",
	"NO":  "New Orleans Saints",
	"NYG": "New York Giants",
	"NYJ": "New York Jets",
	"SEA": "Seattle Seahawks",
	"SF":  "San Francisco 49ers",
	"TB":  "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans",

	// NBA
	"BKN": "Brooklyn Nets",
	"CHI": "Chicago Bulls",
	"GSW": "Golden State Warriors",
	"LAL": "Los Angeles Lakers",
	"MEM": "Memphis Grizzlies",
	"MIA": "Miami Heat",
	"MIL": "Milwaukee Bucks",
	"OKC": "Oklahoma City Thunder",
	"ORL": "Orlando Magic",
	"PHX": "Phoenix Suns",
	"POR": "Portland Trail Blazers",
	"SAC": "Sacramento Kings",
	"SAS": "San Antonio Spurs",
	"UTA": "Utah Jazz",

	// soccer
	"MUFC": "Manchester United",
	"MCFC": "Manchester City",
	"LFC":  "Liverpool",
	"AFC":  "Arsenal",
	"CFC":  "Chelsea",
	"THFC": "Tottenham Hotspur",
	"EFC":  "Everton",
	"NUFC": "Newcastle United",
}
