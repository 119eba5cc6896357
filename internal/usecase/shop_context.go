package usecase

import (
	"fmt"
	"os"
	"strings"
)

// DefaultShopContext is the static shop information included in every prompt
const DefaultShopContext = `# Smart Coffee Hub - Complete Information

## Store Hours
- **Monday - Friday**: 7:00 AM - 7:00 PM
- **Saturday - Sunday**: 8:00 AM - 6:00 PM
- **Holidays**: Please call ahead for holiday hours

## Location & Contact
- **Address**: 123 Coffee Street, Brew City, BC 12345
- **Phone**: (555) 123-BREW
- **Email**: hello@smartcoffeehub.com
- **Website**: www.smartcoffeehub.com

## Menu & Products

### Coffee Drinks
- **Espresso**: $3.50 - Rich, concentrated coffee shot
- **Americano**: $4.00 - Espresso with hot water
- **Cappuccino**: $4.50 - Espresso with steamed milk and foam
- **Latte**: $5.00 - Espresso with steamed milk
- **Mocha**: $5.50 - Espresso with chocolate and steamed milk
- **Cold Brew**: $4.25 - Smooth, cold-steeped coffee
- **Pour Over**: $4.75 - Single-origin coffee, hand-poured
- **Iced Coffee**: $3.75 - Chilled coffee over ice

### Specialty Drinks
- **Vanilla Latte**: $5.25 - Latte with vanilla syrup
- **Caramel Macchiato**: $5.75 - Espresso with caramel and steamed milk
- **Hazelnut Cappuccino**: $5.00 - Cappuccino with hazelnut syrup
- **Cinnamon Dolce Latte**: $5.50 - Latte with cinnamon dolce syrup

### Milk Alternatives
- **Oat Milk**: +$0.75 - Creamy and dairy-free
- **Almond Milk**: +$0.50 - Light and nutty
- **Soy Milk**: +$0.50 - Smooth and creamy
- **Coconut Milk**: +$0.75 - Rich and tropical
- **Regular Milk**: Included - Whole, 2%, or skim

### Food & Pastries
- **Croissants**: $3.50 - Butter, chocolate, or almond
- **Muffins**: $3.00 - Blueberry, chocolate chip, or bran
- **Bagels**: $2.50 - Plain, everything, or sesame
- **Scones**: $3.25 - Plain, cranberry, or blueberry
- **Cookies**: $2.00 - Chocolate chip, oatmeal, or sugar
- **Sandwiches**: $7.50 - Turkey, ham, or veggie
- **Salads**: $8.00 - Caesar, garden, or quinoa

### Coffee Beans (Retail)
- **Ethiopian Yirgacheffe**: $18.00/lb - Bright citrus notes
- **Colombian Supremo**: $16.00/lb - Rich and balanced
- **Guatemalan Antigua**: $17.00/lb - Chocolate and spice
- **Kenyan AA**: $19.00/lb - Wine-like acidity
- **House Blend**: $15.00/lb - Our signature blend

## Services & Amenities
- **Free WiFi**: Available for all customers
- **Power Outlets**: Available at most tables
- **Quiet Zones**: Designated areas for work/study
- **Meeting Room**: Available for rent ($25/hour)
- **Loyalty Program**: Buy 10, get 1 free; free drink on your birthday
- **Discounts**: 10% off for students with valid ID and customers 65+
- **Coffee Classes**: Learn brewing techniques ($35/person)
- **Catering & Private Events**: Available for offices, parties and meetings
- **Subscription Service**: Monthly coffee bean delivery

## Policies
- **Payment**: Cash, Visa, MasterCard, American Express, Apple Pay, Google Pay, Samsung Pay
- **Refunds**: Unsatisfied with your drink? We'll remake it or refund. Food refunded if not consumed. Gift cards never expire.
- **Accessibility**: Wheelchair accessible, service animals welcome, high chairs available

## About Smart Coffee Hub
Our beans are ethically sourced from sustainable farms around the world, and we roast them fresh daily in small batches.
Founded in 2020 by coffee enthusiasts, Smart Coffee Hub is a community gathering place for great coffee, brewing knowledge, and connection.
`

// LoadShopContext reads the shop context from path, or returns the built-in text when path is empty
func LoadShopContext(path string) (string, error) {
	if path == "" {
		return DefaultShopContext, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shop context: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("shop context file %s is empty", path)
	}
	return text, nil
}
