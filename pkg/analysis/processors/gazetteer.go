package processors

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Word lists used by the entity taggers. They are read-only after package init.
var (
	orgSuffixes = mapset.NewThreadUnsafeSet[string](
		"Corp", "Corporation", "Inc", "Incorporated", "Ltd", "Limited", "LLC", "LLP", "PLC",
		"Co", "Company", "Group", "Holdings", "GmbH", "AG", "SA", "Partners", "Associates",
		"Technologies", "Systems", "Labs", "Industries", "Enterprises", "Solutions", "Bank",
		"Airlines", "Motors", "Pharmaceuticals", "Media", "Studios", "Foundation", "Trust",
	)

	orgKeywords = mapset.NewThreadUnsafeSet[string](
		"Bank", "University", "College", "Institute", "School", "Academy", "Association", "Agency",
		"Ministry", "Department", "Council", "Committee", "Commission", "Federation", "Union",
		"Society", "Club", "League", "Party", "Court", "Bureau", "Office", "Organization",
		"Organisation", "Hospital", "Museum", "Church", "Army", "Navy",
	)

	knownOrgs = mapset.NewThreadUnsafeSet[string](
		"Google", "Microsoft", "Apple", "Amazon", "Facebook", "Meta", "IBM", "Intel", "Netflix",
		"Tesla", "Toyota", "Samsung", "Sony", "Oracle", "NASA", "FBI", "CIA", "NATO", "UN",
		"UNESCO", "WHO", "EU", "OPEC", "Reuters", "BBC", "CNN", "Twitter", "Uber", "Nike",
	)

	locationSuffixes = mapset.NewThreadUnsafeSet[string](
		"City", "River", "Lake", "Mountain", "Mountains", "Mount", "Island", "Islands", "Ocean",
		"Sea", "Bay", "Valley", "County", "Province", "State", "Street", "Avenue", "Road",
		"Park", "Desert", "Forest", "Canyon", "Peninsula", "Coast", "Beach", "Square",
	)

	knownLocations = mapset.NewThreadUnsafeSet[string](
		// continents and regions
		"Africa", "Antarctica", "Asia", "Europe", "America", "North America", "South America",
		"Australia", "Oceania", "Middle East", "Scandinavia", "Caribbean",
		// countries
		"Argentina", "Austria", "Belgium", "Brazil", "Canada", "Chile", "China", "Colombia",
		"Denmark", "Egypt", "England", "Finland", "France", "Germany", "Greece", "India",
		"Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy", "Japan", "Kenya", "Korea",
		"Mexico", "Netherlands", "New Zealand", "Nigeria", "Norway", "Pakistan", "Peru",
		"Poland", "Portugal", "Russia", "Scotland", "Singapore", "South Africa", "Spain",
		"Sweden", "Switzerland", "Thailand", "Turkey", "Ukraine", "United Kingdom",
		"United States", "USA", "UK", "Vietnam", "Wales",
		// cities
		"Amsterdam", "Athens", "Bangkok", "Barcelona", "Beijing", "Berlin", "Boston",
		"Brussels", "Cairo", "Chicago", "Dallas", "Delhi", "Dublin", "Dubai", "Edinburgh",
		"Geneva", "Hong Kong", "Houston", "Istanbul", "Jakarta", "Lagos", "Lisbon", "London",
		"Los Angeles", "Madrid", "Manchester", "Melbourne", "Miami", "Milan", "Montreal",
		"Moscow", "Mumbai", "Munich", "Nairobi", "New York", "Oslo", "Paris", "Prague",
		"Rome", "San Francisco", "Seattle", "Seoul", "Shanghai", "Stockholm", "Sydney",
		"Tokyo", "Toronto", "Vancouver", "Vienna", "Warsaw", "Washington", "Zurich",
		// US states
		"Alaska", "Arizona", "California", "Colorado", "Florida", "Georgia", "Hawaii",
		"Illinois", "Michigan", "Nevada", "New Jersey", "Ohio", "Oregon", "Pennsylvania",
		"Texas", "Virginia",
	)

	firstNames = mapset.NewThreadUnsafeSet[string](
		"Adam", "Alice", "Andrew", "Anna", "Barack", "Ben", "Bill", "Bob", "Charles", "Chris",
		"Daniel", "David", "Donald", "Elizabeth", "Emily", "Emma", "Frank", "George", "Grace",
		"Hannah", "Harry", "Henry", "Jack", "James", "Jane", "Jennifer", "Jessica", "John",
		"Joseph", "Julia", "Karen", "Kate", "Laura", "Linda", "Lisa", "Maria", "Mark", "Mary",
		"Matthew", "Michael", "Michelle", "Nancy", "Olivia", "Paul", "Peter", "Richard",
		"Robert", "Sarah", "Sophia", "Steve", "Susan", "Thomas", "Tom", "William",
	)

	honorifics = mapset.NewThreadUnsafeSet[string](
		"Mr", "Mrs", "Ms", "Miss", "Dr", "Prof", "Professor", "Sir", "Dame", "Lord", "Lady",
		"President", "Senator", "Governor", "Mayor", "Judge", "Captain", "General", "King",
		"Queen", "Prince", "Princess", "Saint",
	)

	// title abbreviations whose trailing period does not end a sentence
	abbreviations = mapset.NewThreadUnsafeSet[string](
		"Mr", "Mrs", "Ms", "Dr", "Prof", "Sr", "Jr", "St", "Mt",
	)

	locationPrepositions = mapset.NewThreadUnsafeSet[string](
		"in", "to", "from", "near", "across", "toward", "towards", "into", "around", "through",
		"via", "visited", "visiting",
	)

	runConnectors = mapset.NewThreadUnsafeSet[string]("of", "de", "van", "von", "del")

	// capitalized function words and pronouns that never start or join an entity
	capitalizedFunctionWords = mapset.NewThreadUnsafeSet[string](
		"A", "An", "The", "This", "That", "These", "Those", "He", "She", "It", "They", "We",
		"I", "You", "His", "Her", "Its", "Their", "Our", "My", "Your", "There", "Here",
		"But", "And", "Or", "So", "If", "When", "While", "After", "Before", "Then", "However",
		"Yesterday", "Today", "Tomorrow", "Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday", "January", "February", "March", "April", "May",
		"June", "July", "August", "September", "October", "November", "December",
	)
)
