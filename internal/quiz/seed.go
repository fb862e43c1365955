package quiz

// Seed returns the built-in bank used when nothing else is configured.
func Seed() []Question {
	return []Question{
		NewQuestion("Which country has the most population?", []string{"China", "USA", "India"}, 0),
		NewQuestion("Which country is the biggest?", []string{"USA", "China", "Russia"}, 2),
		NewQuestion("Who is the leading actor in the movie Napoleon?", []string{"Joaquin Phoenix", "Tom Cruise", "Tom Hanks"}, 0),
		NewQuestion("Who is US president?", []string{"Donald Trump", "Joe Biden", "Obama"}, 1),
		NewQuestion("In what year was The Shawshank Redemption a movie?", []string{"1990", "1998", "1994"}, 2),
		NewQuestion("What is the capital of France?", []string{"Paris", "Berlin", "London"}, 0),
		NewQuestion("Which element has the chemical symbol 'O'?", []string{"Gold", "Oxygen", "Silver"}, 1),
		NewQuestion("Who wrote 'Romeo and Juliet'?", []string{"William Shakespeare", "Charles Dickens", "Leo Tolstoy"}, 0),
		NewQuestion("What is the largest ocean on Earth?", []string{"Atlantic Ocean", "Indian Ocean", "Pacific Ocean"}, 2),
		NewQuestion("Who is known as the father of computers?", []string{"Albert Einstein", "Isaac Newton", "Charles Babbage"}, 2),
		NewQuestion("What year did the first man land on the moon?", []string{"1969", "1972", "1965"}, 0),
		NewQuestion("Which planet is known as the Red Planet?", []string{"Mars", "Jupiter", "Saturn"}, 0),
		NewQuestion("What is the hardest natural substance on Earth?", []string{"Diamond", "Gold", "Iron"}, 0),
		NewQuestion("What is the largest animal in the world?", []string{"African Elephant", "Blue Whale", "Giraffe"}, 1),
		NewQuestion("Who painted the Mona Lisa?", []string{"Leonardo da Vinci", "Vincent Van Gogh", "Pablo Picasso"}, 0),
		NewQuestion("What is the smallest country in the world?", []string{"Monaco", "Vatican City", "Nauru"}, 1),
		NewQuestion("What language has the most words?", []string{"Chinese", "English", "Spanish"}, 1),
		NewQuestion("Who invented the telephone?", []string{"Alexander Graham Bell", "Thomas Edison", "Nikola Tesla"}, 0),
		NewQuestion("In which city were the 2008 Summer Olympics held?", []string{"Beijing", "London", "Sydney"}, 0),
		NewQuestion("What is the boiling point of water?", []string{"100°C", "90°C", "110°C"}, 0),
	}
}
