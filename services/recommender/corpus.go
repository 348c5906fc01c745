package recommender

import "vibemix/blueprint"

// The track corpus is the deterministic backstop for when the generative
// backend is unavailable. Hand curated, keyed by genre/mood/use-case tags,
// initialized once and never mutated.

var trackDatabase = map[string][]blueprint.CandidateSong{
	"pop": {
		{Title: "Blinding Lights", Artist: "The Weeknd"},
		{Title: "Levitating", Artist: "Dua Lipa"},
		{Title: "Good 4 U", Artist: "Olivia Rodrigo"},
		{Title: "Watermelon Sugar", Artist: "Harry Styles"},
		{Title: "Anti-Hero", Artist: "Taylor Swift"},
		{Title: "Heat Waves", Artist: "Glass Animals"},
		{Title: "Stay", Artist: "The Kid LAROI"},
		{Title: "Industry Baby", Artist: "Lil Nas X"},
		{Title: "Shape of You", Artist: "Ed Sheeran"},
		{Title: "Perfect", Artist: "Ed Sheeran"},
		{Title: "Bad Habits", Artist: "Ed Sheeran"},
		{Title: "drivers license", Artist: "Olivia Rodrigo"},
		{Title: "As It Was", Artist: "Harry Styles"},
		{Title: "Flowers", Artist: "Miley Cyrus"},
		{Title: "Cruel Summer", Artist: "Taylor Swift"},
		{Title: "Don't Start Now", Artist: "Dua Lipa"},
		{Title: "positions", Artist: "Ariana Grande"},
		{Title: "34+35", Artist: "Ariana Grande"},
		{Title: "Peaches", Artist: "Justin Bieber"},
		{Title: "Leave The Door Open", Artist: "Bruno Mars"},
	},
	"rock": {
		{Title: "Don't Stop Me Now", Artist: "Queen"},
		{Title: "Mr. Brightside", Artist: "The Killers"},
		{Title: "Bohemian Rhapsody", Artist: "Queen"},
		{Title: "Sweet Child O' Mine", Artist: "Guns N' Roses"},
		{Title: "Thunderstruck", Artist: "AC/DC"},
		{Title: "Livin' on a Prayer", Artist: "Bon Jovi"},
		{Title: "Don't Stop Believin'", Artist: "Journey"},
		{Title: "We Will Rock You", Artist: "Queen"},
		{Title: "Highway to Hell", Artist: "AC/DC"},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana"},
		{Title: "Welcome to the Jungle", Artist: "Guns N' Roses"},
		{Title: "Paradise City", Artist: "Guns N' Roses"},
		{Title: "Stairway to Heaven", Artist: "Led Zeppelin"},
		{Title: "Hotel California", Artist: "Eagles"},
		{Title: "Free Bird", Artist: "Lynyrd Skynyrd"},
		{Title: "More Than a Feeling", Artist: "Boston"},
		{Title: "Come As You Are", Artist: "Nirvana"},
		{Title: "Black", Artist: "Pearl Jam"},
		{Title: "Enter Sandman", Artist: "Metallica"},
		{Title: "Back in Black", Artist: "AC/DC"},
	},
	"hiphop": {
		{Title: "HUMBLE.", Artist: "Kendrick Lamar"},
		{Title: "God's Plan", Artist: "Drake"},
		{Title: "Sicko Mode", Artist: "Travis Scott"},
		{Title: "Old Town Road", Artist: "Lil Nas X"},
		{Title: "Lose Yourself", Artist: "Eminem"},
		{Title: "Good Kid", Artist: "Kendrick Lamar"},
		{Title: "Hotline Bling", Artist: "Drake"},
		{Title: "Montero", Artist: "Lil Nas X"},
		{Title: "STAR WALKIN'", Artist: "Lil Nas X"},
		{Title: "Praise The Lord", Artist: "A$AP Rocky"},
		{Title: "Money Trees", Artist: "Kendrick Lamar"},
		{Title: "Started From The Bottom", Artist: "Drake"},
		{Title: "No Role Modelz", Artist: "J. Cole"},
		{Title: "LOVE.", Artist: "Kendrick Lamar"},
		{Title: "XO TOUR Llif3", Artist: "Lil Uzi Vert"},
		{Title: "Lucid Dreams", Artist: "Juice WRLD"},
		{Title: "Goosebumps", Artist: "Travis Scott"},
		{Title: "Life Is Good", Artist: "Future"},
		{Title: "The Box", Artist: "Roddy Ricch"},
		{Title: "Rockstar", Artist: "Post Malone"},
	},
	"electronic": {
		{Title: "Levels", Artist: "Avicii"},
		{Title: "Titanium", Artist: "David Guetta"},
		{Title: "Wake Me Up", Artist: "Avicii"},
		{Title: "Bangarang", Artist: "Skrillex"},
		{Title: "Clarity", Artist: "Zedd"},
		{Title: "Animals", Artist: "Martin Garrix"},
		{Title: "Lean On", Artist: "Major Lazer"},
		{Title: "Midnight City", Artist: "M83"},
		{Title: "One More Time", Artist: "Daft Punk"},
		{Title: "Strobe", Artist: "Deadmau5"},
		{Title: "Scary Monsters and Nice Sprites", Artist: "Skrillex"},
		{Title: "Ghosts 'n' Stuff", Artist: "Deadmau5"},
		{Title: "Sandstorm", Artist: "Darude"},
		{Title: "Alive", Artist: "Daft Punk"},
		{Title: "Harder Better Faster Stronger", Artist: "Daft Punk"},
		{Title: "Around the World", Artist: "Daft Punk"},
		{Title: "Summertime Sadness", Artist: "Lana Del Rey"},
		{Title: "Safe & Sound", Artist: "Capital Cities"},
		{Title: "Spectrum", Artist: "Zedd"},
		{Title: "Stay The Night", Artist: "Zedd"},
	},
	"jazz": {
		{Title: "Take Five", Artist: "Dave Brubeck"},
		{Title: "What a Wonderful World", Artist: "Louis Armstrong"},
		{Title: "Fly Me to the Moon", Artist: "Frank Sinatra"},
		{Title: "The Girl from Ipanema", Artist: "Stan Getz"},
		{Title: "Autumn Leaves", Artist: "Miles Davis"},
		{Title: "Blue Moon", Artist: "Billie Holiday"},
		{Title: "Summertime", Artist: "Ella Fitzgerald"},
		{Title: "Mack the Knife", Artist: "Bobby Darin"},
		{Title: "Kind of Blue", Artist: "Miles Davis"},
		{Title: "A Love Supreme", Artist: "John Coltrane"},
		{Title: "Round Midnight", Artist: "Thelonious Monk"},
		{Title: "All of Me", Artist: "Billie Holiday"},
		{Title: "My Way", Artist: "Frank Sinatra"},
		{Title: "Feeling Good", Artist: "Nina Simone"},
		{Title: "Cheek to Cheek", Artist: "Ella Fitzgerald"},
		{Title: "Strange Fruit", Artist: "Billie Holiday"},
		{Title: "Dream a Little Dream", Artist: "Ella Fitzgerald"},
		{Title: "Georgia on My Mind", Artist: "Ray Charles"},
		{Title: "Ain't Misbehavin'", Artist: "Fats Waller"},
		{Title: "Body and Soul", Artist: "Coleman Hawkins"},
	},
	"classical": {
		{Title: "Eine kleine Nachtmusik", Artist: "Mozart"},
		{Title: "Canon in D", Artist: "Pachelbel"},
		{Title: "Symphony No. 9", Artist: "Beethoven"},
		{Title: "The Four Seasons", Artist: "Vivaldi"},
		{Title: "Clair de Lune", Artist: "Debussy"},
		{Title: "Ave Maria", Artist: "Schubert"},
		{Title: "Moonlight Sonata", Artist: "Beethoven"},
		{Title: "Swan Lake", Artist: "Tchaikovsky"},
		{Title: "Für Elise", Artist: "Beethoven"},
		{Title: "The Blue Danube", Artist: "Johann Strauss II"},
		{Title: "Carmen Suite", Artist: "Bizet"},
		{Title: "1812 Overture", Artist: "Tchaikovsky"},
		{Title: "Bolero", Artist: "Ravel"},
		{Title: "Prelude in C Major", Artist: "Bach"},
		{Title: "Air on the G String", Artist: "Bach"},
		{Title: "William Tell Overture", Artist: "Rossini"},
		{Title: "Ode to Joy", Artist: "Beethoven"},
		{Title: "Spring", Artist: "Vivaldi"},
		{Title: "Gymnopédie No. 1", Artist: "Erik Satie"},
		{Title: "Ride of the Valkyries", Artist: "Wagner"},
	},
	"country": {
		{Title: "Friends in Low Places", Artist: "Garth Brooks"},
		{Title: "Sweet Caroline", Artist: "Neil Diamond"},
		{Title: "Take Me Home, Country Roads", Artist: "John Denver"},
		{Title: "Wagon Wheel", Artist: "Darius Rucker"},
		{Title: "Before He Cheats", Artist: "Carrie Underwood"},
		{Title: "Cruise", Artist: "Florida Georgia Line"},
		{Title: "Body Like a Back Road", Artist: "Sam Hunt"},
		{Title: "The Good Ones", Artist: "Gabby Barrett"},
		{Title: "Tennessee Whiskey", Artist: "Chris Stapleton"},
		{Title: "God's Country", Artist: "Blake Shelton"},
		{Title: "The Bones", Artist: "Maren Morris"},
		{Title: "10,000 Hours", Artist: "Dan + Shay"},
		{Title: "Speechless", Artist: "Dan + Shay"},
		{Title: "Girl", Artist: "Maren Morris"},
		{Title: "Heaven", Artist: "Kane Brown"},
		{Title: "Beautiful Crazy", Artist: "Luke Combs"},
		{Title: "Hurricane", Artist: "Luke Combs"},
		{Title: "Heartbreak Hotel", Artist: "Elvis Presley"},
		{Title: "Ring of Fire", Artist: "Johnny Cash"},
		{Title: "Jolene", Artist: "Dolly Parton"},
	},
	"rnb": {
		{Title: "Blinding Lights", Artist: "The Weeknd"},
		{Title: "Peaches", Artist: "Justin Bieber"},
		{Title: "Good as Hell", Artist: "Lizzo"},
		{Title: "Sunflower", Artist: "Post Malone"},
		{Title: "Circles", Artist: "Post Malone"},
		{Title: "Adorn", Artist: "Miguel"},
		{Title: "Golden", Artist: "Jill Scott"},
		{Title: "Best Part", Artist: "Daniel Caesar"},
		{Title: "Come Through and Chill", Artist: "Miguel"},
		{Title: "Get You", Artist: "Daniel Caesar"},
		{Title: "Earned It", Artist: "The Weeknd"},
		{Title: "Can't Feel My Face", Artist: "The Weeknd"},
		{Title: "Starboy", Artist: "The Weeknd"},
		{Title: "Formation", Artist: "Beyoncé"},
		{Title: "Crazy in Love", Artist: "Beyoncé"},
		{Title: "Single Ladies", Artist: "Beyoncé"},
		{Title: "Love on Top", Artist: "Beyoncé"},
		{Title: "Truth Hurts", Artist: "Lizzo"},
		{Title: "Juice", Artist: "Lizzo"},
		{Title: "About Damn Time", Artist: "Lizzo"},
	},
	"reggae": {
		{Title: "No Woman No Cry", Artist: "Bob Marley"},
		{Title: "Three Little Birds", Artist: "Bob Marley"},
		{Title: "One Love", Artist: "Bob Marley"},
		{Title: "Is This Love", Artist: "Bob Marley"},
		{Title: "Could You Be Loved", Artist: "Bob Marley"},
		{Title: "Buffalo Soldier", Artist: "Bob Marley"},
		{Title: "I Shot the Sheriff", Artist: "Bob Marley"},
		{Title: "Get Up, Stand Up", Artist: "Bob Marley"},
		{Title: "Red Red Wine", Artist: "UB40"},
		{Title: "Kingston Town", Artist: "UB40"},
		{Title: "The Tide Is High", Artist: "Blondie"},
		{Title: "Electric Avenue", Artist: "Eddy Grant"},
		{Title: "Here Comes the Hotstepper", Artist: "Ini Kamoze"},
		{Title: "Police and Thieves", Artist: "The Clash"},
		{Title: "Legalize It", Artist: "Peter Tosh"},
		{Title: "Many Rivers to Cross", Artist: "Jimmy Cliff"},
		{Title: "The Harder They Come", Artist: "Jimmy Cliff"},
		{Title: "Pass the Dutchie", Artist: "Musical Youth"},
		{Title: "Israelites", Artist: "Desmond Dekker"},
	},
	"metal": {
		{Title: "Enter Sandman", Artist: "Metallica"},
		{Title: "Master of Puppets", Artist: "Metallica"},
		{Title: "One", Artist: "Metallica"},
		{Title: "Nothing Else Matters", Artist: "Metallica"},
		{Title: "Paranoid", Artist: "Black Sabbath"},
		{Title: "Iron Man", Artist: "Black Sabbath"},
		{Title: "War Pigs", Artist: "Black Sabbath"},
		{Title: "Crazy Train", Artist: "Ozzy Osbourne"},
		{Title: "Mr. Crowley", Artist: "Ozzy Osbourne"},
		{Title: "Cemetery Gates", Artist: "Pantera"},
		{Title: "Walk", Artist: "Pantera"},
		{Title: "Holy Wars", Artist: "Megadeth"},
		{Title: "Peace Sells", Artist: "Megadeth"},
		{Title: "Ace of Spades", Artist: "Motörhead"},
		{Title: "Breaking the Law", Artist: "Judas Priest"},
		{Title: "Painkiller", Artist: "Judas Priest"},
		{Title: "Run to the Hills", Artist: "Iron Maiden"},
		{Title: "The Number of the Beast", Artist: "Iron Maiden"},
		{Title: "Hallowed Be Thy Name", Artist: "Iron Maiden"},
		{Title: "Chop Suey!", Artist: "System of a Down"},
	},
	"lofi": {
		{Title: "In Love", Artist: "Kina"},
		{Title: "Snowman", Artist: "WYS"},
		{Title: "Coffee", Artist: "Kainbeats"},
		{Title: "Rainy Days", Artist: "Lofi Hip Hop"},
		{Title: "Study Session", Artist: "ChilledCow"},
		{Title: "Midnight", Artist: "Philanthrope"},
		{Title: "Warm Nights", Artist: "Idealism"},
		{Title: "Morning Coffee", Artist: "Sleepy Fish"},
		{Title: "Lazy Sunday", Artist: "Kupla"},
		{Title: "Dreamscape", Artist: "eazykill"},
		{Title: "Sunset", Artist: "Lomea"},
		{Title: "Memories", Artist: "Vanilla"},
		{Title: "Focus", Artist: "j'san"},
		{Title: "Chill Vibes", Artist: "Steezy Prime"},
		{Title: "Study Time", Artist: "Lofi Fruits Music"},
		{Title: "Peaceful Mind", Artist: "Purrple Cat"},
		{Title: "Gentle Rain", Artist: "Globular"},
		{Title: "Café Atmosphere", Artist: "Masked Man"},
		{Title: "Homework", Artist: "Jinsang"},
		{Title: "Relax", Artist: "Jhfly"},
	},
	"ambient": {
		{Title: "Music for Airports", Artist: "Brian Eno"},
		{Title: "An Ending (Ascent)", Artist: "Brian Eno"},
		{Title: "Discreet Music", Artist: "Brian Eno"},
		{Title: "Sleep", Artist: "Max Richter"},
		{Title: "The Blue Notebooks", Artist: "Max Richter"},
		{Title: "Substrata", Artist: "Biosphere"},
		{Title: "Ambient 1", Artist: "Brian Eno"},
		{Title: "Overgrown", Artist: "James Blake"},
		{Title: "Selected Ambient Works", Artist: "Aphex Twin"},
		{Title: "Immunity", Artist: "Jon Hopkins"},
		{Title: "Weightless", Artist: "Marconi Union"},
		{Title: "Polar Sequence", Artist: "Biosphere"},
		{Title: "Music for Films", Artist: "Brian Eno"},
		{Title: "Thursday Afternoon", Artist: "Brian Eno"},
		{Title: "Apollo", Artist: "Brian Eno"},
		{Title: "Lux", Artist: "Brian Eno"},
		{Title: "Reflection", Artist: "Brian Eno"},
		{Title: "Slow Movement", Artist: "Trent Reznor"},
	},
	"chillhop": {
		{Title: "Bliss", Artist: "Mura Masa"},
		{Title: "Shiloh", Artist: "Shiloh Dynasty"},
		{Title: "Nymph", Artist: "Hiatus Kaiyote"},
		{Title: "Sundial", Artist: "Noname"},
		{Title: "Aqueous", Artist: "FloFilz"},
		{Title: "Golden", Artist: "joji"},
		{Title: "Feather", Artist: "Nujabes"},
		{Title: "Aruarian Dance", Artist: "Nujabes"},
		{Title: "Modal Soul", Artist: "Nujabes"},
		{Title: "Mystline", Artist: "Nujabes"},
		{Title: "Blessing It", Artist: "Nujabes"},
		{Title: "Luv(sic)", Artist: "Nujabes"},
		{Title: "Horizon", Artist: "Tycho"},
		{Title: "A Walk", Artist: "Tycho"},
		{Title: "Montana", Artist: "Tycho"},
		{Title: "Dive", Artist: "Tycho"},
		{Title: "Elegy", Artist: "Tycho"},
		{Title: "Past Is Prologue", Artist: "Tycho"},
		{Title: "Coastal Brake", Artist: "Tycho"},
		{Title: "Daydream", Artist: "Tycho"},
	},
	"instrumental": {
		{Title: "River Flows in You", Artist: "Yiruma"},
		{Title: "Kiss the Rain", Artist: "Yiruma"},
		{Title: "Comptine d'un autre été", Artist: "Yann Tiersen"},
		{Title: "Nuvole Bianche", Artist: "Ludovico Einaudi"},
		{Title: "Una Mattina", Artist: "Ludovico Einaudi"},
		{Title: "Divenire", Artist: "Ludovico Einaudi"},
		{Title: "Primavera", Artist: "Ludovico Einaudi"},
		{Title: "Spiegel im Spiegel", Artist: "Arvo Pärt"},
		{Title: "On the Nature of Daylight", Artist: "Max Richter"},
		{Title: "Written on the Sky", Artist: "Max Richter"},
		{Title: "Experience", Artist: "Ludovico Einaudi"},
		{Title: "Elegy for Dunkirk", Artist: "Dario Marianelli"},
		{Title: "Metamorphosis", Artist: "Philip Glass"},
		{Title: "Opening", Artist: "Philip Glass"},
		{Title: "Mad Rush", Artist: "Philip Glass"},
	},
}

var moodTracks = map[string][]blueprint.CandidateSong{
	"energetic": {
		{Title: "Uptown Funk", Artist: "Bruno Mars"},
		{Title: "Can't Stop the Feeling", Artist: "Justin Timberlake"},
		{Title: "Happy", Artist: "Pharrell Williams"},
		{Title: "Pump It", Artist: "Black Eyed Peas"},
		{Title: "Dynamite", Artist: "BTS"},
		{Title: "Shut Up and Dance", Artist: "Walk the Moon"},
	},
	"calm": {
		{Title: "Weightless", Artist: "Marconi Union"},
		{Title: "Clair de Lune", Artist: "Debussy"},
		{Title: "Mad World", Artist: "Gary Jules"},
		{Title: "The Night We Met", Artist: "Lord Huron"},
		{Title: "Holocene", Artist: "Bon Iver"},
		{Title: "River", Artist: "Joni Mitchell"},
	},
	"happy": {
		{Title: "Walking on Sunshine", Artist: "Katrina and the Waves"},
		{Title: "Good Vibrations", Artist: "The Beach Boys"},
		{Title: "I Want It That Way", Artist: "Backstreet Boys"},
		{Title: "Dancing Queen", Artist: "ABBA"},
		{Title: "September", Artist: "Earth, Wind & Fire"},
		{Title: "Good Times", Artist: "Chic"},
	},
	"sad": {
		{Title: "Someone Like You", Artist: "Adele"},
		{Title: "Hello", Artist: "Adele"},
		{Title: "Mad World", Artist: "Gary Jules"},
		{Title: "Hurt", Artist: "Johnny Cash"},
		{Title: "Black", Artist: "Pearl Jam"},
		{Title: "Tears in Heaven", Artist: "Eric Clapton"},
	},
	"romantic": {
		{Title: "Perfect", Artist: "Ed Sheeran"},
		{Title: "Thinking Out Loud", Artist: "Ed Sheeran"},
		{Title: "All of Me", Artist: "John Legend"},
		{Title: "At Last", Artist: "Etta James"},
		{Title: "Can't Help Myself", Artist: "Four Tops"},
		{Title: "La Vie En Rose", Artist: "Édith Piaf"},
	},
}

var useCaseTracks = map[string][]blueprint.CandidateSong{
	"workout": {
		{Title: "Eye of the Tiger", Artist: "Survivor"},
		{Title: "Stronger", Artist: "Kanye West"},
		{Title: "Till I Collapse", Artist: "Eminem"},
		{Title: "Pump It Up", Artist: "Endor"},
		{Title: "Thunder", Artist: "Imagine Dragons"},
		{Title: "Believer", Artist: "Imagine Dragons"},
		{Title: "We Will Rock You", Artist: "Queen"},
		{Title: "Don't Stop Me Now", Artist: "Queen"},
	},
	"work": {
		{Title: "Konzert für Violine", Artist: "Vivaldi"},
		{Title: "Nuvole Bianche", Artist: "Ludovico Einaudi"},
		{Title: "Near Light", Artist: "Ólafur Arnalds"},
		{Title: "On The Nature of Daylight", Artist: "Max Richter"},
		{Title: "Spiegel im Spiegel", Artist: "Arvo Pärt"},
		{Title: "Metamorphosis Two", Artist: "Philip Glass"},
	},
	"studying": {
		{Title: "Weightless", Artist: "Marconi Union"},
		{Title: "Clair de Lune", Artist: "Debussy"},
		{Title: "Gymnopédie No. 1", Artist: "Erik Satie"},
		{Title: "Comptine d'un autre été", Artist: "Yann Tiersen"},
		{Title: "River Flows in You", Artist: "Yiruma"},
		{Title: "Nuvole Bianche", Artist: "Ludovico Einaudi"},
	},
	"relaxing": {
		{Title: "Weightless", Artist: "Marconi Union"},
		{Title: "Aqueous Transmission", Artist: "Incubus"},
		{Title: "Clair de Lune", Artist: "Debussy"},
		{Title: "Mad World", Artist: "Gary Jules"},
		{Title: "The Night We Met", Artist: "Lord Huron"},
		{Title: "Holocene", Artist: "Bon Iver"},
	},
	"sleeping": {
		{Title: "Weightless", Artist: "Marconi Union"},
		{Title: "Clair de Lune", Artist: "Debussy"},
		{Title: "Gymnopédie No. 1", Artist: "Erik Satie"},
		{Title: "Spiegel im Spiegel", Artist: "Arvo Pärt"},
		{Title: "Metamorphosis Two", Artist: "Philip Glass"},
		{Title: "Sleep Baby Sleep", Artist: "Broods"},
	},
}

// popularBackfill fills still-empty slots when every tagged pool is exhausted.
var popularBackfill = []blueprint.CandidateSong{
	{Title: "Rolling in the Deep", Artist: "Adele"},
	{Title: "Thinking Out Loud", Artist: "Ed Sheeran"},
	{Title: "Hello", Artist: "Adele"},
	{Title: "Despacito", Artist: "Luis Fonsi"},
	{Title: "Closer", Artist: "The Chainsmokers"},
	{Title: "Someone You Loved", Artist: "Lewis Capaldi"},
	{Title: "Sunflower", Artist: "Post Malone"},
	{Title: "Circles", Artist: "Post Malone"},
}
