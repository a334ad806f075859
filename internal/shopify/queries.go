package shopify

const productsPageQuery = `
query ProductsPage($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    nodes {
      vendor
      productType
      category { name }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const productVariantsQuery = `
query ProductVariants($id: ID!, $first: Int!, $after: String) {
  product(id: $id) {
    variants(first: $first, after: $after) {
      nodes {
        id
        selectedOptions { name value }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const variantsBulkUpdateMutation = `
mutation VariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    productVariants { id }
    userErrors { field message }
  }
}`

const variantsBulkCreateMutation = `
mutation VariantsBulkCreate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkCreate(productId: $productId, variants: $variants) {
    productVariants { id }
    userErrors { field message }
  }
}`
