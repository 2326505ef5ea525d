package services

import "strconv"

// FizzBuzzService classifies integers by divisibility by 3 and 5.
type FizzBuzzService struct{}

// NewFizzBuzzService creates a new FizzBuzzService.
func NewFizzBuzzService() *FizzBuzzService {
	return &FizzBuzzService{}
}

// FizzBuzz returns "FizzBuzz", "Fizz", "Buzz" or the number itself.
func (s *FizzBuzzService) FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}
